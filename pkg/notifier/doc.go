// Package notifier delivers appointment lifecycle notifications: immediate
// transactional emails with bounded retries, and time-deferred jobs drained
// by a single in-process dispatcher.
//
// The package is organised around one Service per process:
//
//   - Send*Email methods: synchronous delivery; the caller blocks through
//     up to MaxAttempts transport attempts and receives the final error once
//     retries are exhausted.
//   - QueueNotification / ScheduleReminderEmail: fire-and-forget deferred
//     delivery; exhausted retries are logged and dropped, never surfaced.
//   - HandleAppointmentEvent: maps created/updated/cancelled/completed
//     events onto the two paths above.
//
// Both paths share one retry.Policy, so observed retry timing is identical
// regardless of how a notification was submitted.
//
// # Queue semantics
//
// The queue is an in-memory FIFO guarded by a mutex; Enqueue may be called
// from concurrent goroutines. Exactly one drain loop runs at a time, guarded
// by a processing flag. The loop pops the head job, delivers it if due,
// rotates it to the tail if not, and pauses briefly between iterations. A
// job leaves the queue exactly once: on successful delivery or when retries
// are exhausted.
//
// There is no persistence: a process restart discards pending jobs, and
// running multiple processes can deliver duplicates. Single-process
// deployment is a design constraint.
//
// # Usage
//
//	svc, err := notifier.New(
//	    email.MustNewTemplateRegistry(),
//	    transport,
//	    notifier.WithRetryPolicy(retry.Policy{MaxAttempts: 3, BaseDelay: 5 * time.Second}),
//	)
//	if err != nil {
//	    return err
//	}
//
//	// Booking subsystem reports lifecycle events:
//	if err := svc.HandleAppointmentEvent(ctx, notifier.EventCreated, appt, notifier.Options{}); err != nil {
//	    // confirmation failed after retries; surface to the user
//	}
//
//	// Operational tooling:
//	http.Handle("/internal/notifier/", http.StripPrefix("/internal/notifier", notifier.StatusHandler(svc)))
package notifier
