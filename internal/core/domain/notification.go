package domain

// NotificationLevel is the severity of a notification shown to the user
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// RouteLibrary is the navigation route of the video library view
const RouteLibrary = "library"

// NavigationAction is a shortcut offered alongside a notification
type NavigationAction struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

// Notification is the user facing outcome of the capture and upload workflow
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Action  *NavigationAction `json:"action,omitempty"`
	Record  *VideoRecord      `json:"-"`
	Err     error             `json:"-"`
}
