package models

// EmailJob is a rendered email handed to the background dispatcher after
// the triggering transaction has committed. Delivery failure is logged and
// swallowed; it never propagates back to the request that produced the job.
type EmailJob struct {
	To      string
	Subject string
	HTML    string
}
