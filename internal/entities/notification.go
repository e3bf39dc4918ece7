package entities

type NotificationType string

const (
	NotificationEmail NotificationType = "email"
	NotificationSMS   NotificationType = "sms"
)

type Notification struct {
	Type      NotificationType
	Recipient string
}
