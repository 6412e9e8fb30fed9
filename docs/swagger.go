package docs

import "github.com/swaggo/swag"

// @title           Production Calendar API
// @version         1.0
// @description     API for a video production team calendar: tasks, schedule conflicts, productions and reminders

// @host      localhost:8080
// @BasePath  /

// @tag.name Tasks
// @tag.description Calendar task operations

// @tag.name Schedule
// @tag.description Conflict resolution and schedule pushing

// @tag.name Productions
// @tag.description Linked preparation/filming/editing task creation

// @tag.name Notifications
// @tag.description Deadline and prep reminder feed

// @tag.name Team
// @tag.description People, clients and projects

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return swag.Instance
}
