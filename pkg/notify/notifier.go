package notify

// Notifier delivers invitation links out-of-band. QueueInvite returns once
// the delivery job has been accepted, not once the message is delivered;
// actual transmission happens asynchronously with no ordering guarantee.
type Notifier interface {
	QueueInvite(toEmail, teamName, link string) error
}
