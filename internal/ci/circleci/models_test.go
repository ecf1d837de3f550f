package circleci

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipelineAt(id string, created string) Pipeline {
	ts, err := time.Parse(time.RFC3339, created)
	if err != nil {
		panic(err)
	}
	return Pipeline{ID: id, CreatedAt: ts}
}

func TestLatest(t *testing.T) {
	t.Run("should return the most recently created item", func(t *testing.T) {
		items := []Pipeline{
			pipelineAt("mid", "2020-01-01T00:00:00Z"),
			pipelineAt("old", "2019-01-01T00:00:00Z"),
			pipelineAt("new", "2021-06-15T12:00:00Z"),
		}

		latest, ok := Latest(items)

		require.True(t, ok)
		assert.Equal(t, "new", latest.ID)
	})

	t.Run("should report no item for an empty list", func(t *testing.T) {
		_, ok := Latest([]Pipeline{})
		assert.False(t, ok)
	})
}

func TestEarliest(t *testing.T) {
	t.Run("should return the oldest item", func(t *testing.T) {
		items := []Pipeline{
			pipelineAt("mid", "2020-01-01T00:00:00Z"),
			pipelineAt("old", "2019-01-01T00:00:00Z"),
		}

		earliest, ok := Earliest(items)

		require.True(t, ok)
		assert.Equal(t, "old", earliest.ID)
	})

	t.Run("should report no item for an empty list", func(t *testing.T) {
		_, ok := Earliest[Pipeline](nil)
		assert.False(t, ok)
	})

	t.Run("should not reorder the input", func(t *testing.T) {
		items := []Pipeline{
			pipelineAt("b", "2020-01-02T00:00:00Z"),
			pipelineAt("a", "2020-01-01T00:00:00Z"),
		}

		_, _ = Earliest(items)
		_, _ = Latest(items)

		assert.Equal(t, "b", items[0].ID)
		assert.Equal(t, "a", items[1].ID)
	})
}
