package notify

import (
	"fmt"
	"net/smtp"

	"github.com/apex/log"
)

const inviteQueueSize = 64

type SMTPOpts struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type inviteJob struct {
	toEmail  string
	teamName string
	link     string
}

// SMTPNotifier sends invitation email over SMTP. Jobs queue on a buffered
// channel drained by a single worker goroutine; a delivery failure is logged
// and dropped. Retries, if ever wanted, belong here and not in the issuer.
type SMTPNotifier struct {
	opts SMTPOpts
	jobs chan inviteJob
	done chan struct{}
}

func NewSMTPNotifier(opts SMTPOpts) *SMTPNotifier {
	n := &SMTPNotifier{
		opts: opts,
		jobs: make(chan inviteJob, inviteQueueSize),
		done: make(chan struct{}),
	}

	go n.deliveryLoop()

	return n
}

func (n *SMTPNotifier) QueueInvite(toEmail, teamName, link string) error {
	select {
	case n.jobs <- inviteJob{toEmail: toEmail, teamName: teamName, link: link}:
		return nil
	default:
		return fmt.Errorf("invite delivery queue is full")
	}
}

// Stop shuts the worker down after it drains any queued jobs.
func (n *SMTPNotifier) Stop() {
	close(n.jobs)
	<-n.done
}

func (n *SMTPNotifier) deliveryLoop() {
	defer close(n.done)

	for job := range n.jobs {
		if err := n.send(job); err != nil {
			log.Errorf("Failed sending invite email to %s: %s", job.toEmail, err)
		}
	}
}

func (n *SMTPNotifier) send(job inviteJob) error {
	auth := smtp.PlainAuth("", n.opts.Username, n.opts.Password, n.opts.Host)

	subject := fmt.Sprintf("You're invited to join %s on Tochly", job.teamName)
	body := fmt.Sprintf("Hi,\n\nYou've been invited to join %s.\nAccept the invite here: %s\n\nThanks!",
		job.teamName, job.link)

	msg := []byte("From: " + n.opts.From + "\r\n" +
		"To: " + job.toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body)

	addr := n.opts.Host + ":" + n.opts.Port
	return smtp.SendMail(addr, auth, n.opts.From, []string{job.toEmail}, msg)
}
