package ci

import "github.com/fatih/color"

// colorStatus maps CircleCI pipeline/workflow/job statuses to CLI colors.
func colorStatus(status string) string {
	switch status {
	case "success", "created":
		return color.GreenString(status)
	case "failed", "error", "failing", "unauthorized":
		return color.RedString(status)
	case "running", "on_hold", "setup", "pending", "queued":
		return color.YellowString(status)
	case "canceled", "not_run":
		return color.HiBlackString(status)
	default:
		return status
	}
}
