package notify

import "sync"

// CapturedInvite is one invite a CapturingNotifier accepted.
type CapturedInvite struct {
	ToEmail  string
	TeamName string
	Link     string
}

// CapturingNotifier records queued invites instead of delivering them. Tests
// use it to assert on what the issuer dispatched.
type CapturingNotifier struct {
	mu      sync.Mutex
	invites []CapturedInvite
}

func NewCapturingNotifier() *CapturingNotifier {
	return &CapturingNotifier{}
}

func (n *CapturingNotifier) QueueInvite(toEmail, teamName, link string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.invites = append(n.invites, CapturedInvite{ToEmail: toEmail, TeamName: teamName, Link: link})
	return nil
}

func (n *CapturingNotifier) Invites() []CapturedInvite {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]CapturedInvite(nil), n.invites...)
}
