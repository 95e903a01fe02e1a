// Package retry provides the shared retry policy for outbound notification
// delivery.
//
// A single Policy value is consumed by both delivery paths, the synchronous
// email client and the deferred queue dispatcher, so observed retry timing is
// identical regardless of which path a notification takes.
//
// # Usage
//
//	policy := retry.Policy{MaxAttempts: 3, BaseDelay: 5 * time.Second}
//
//	attempts := 0
//	for {
//	    err := send()
//	    if err == nil {
//	        break
//	    }
//	    attempts++
//	    if !policy.ShouldRetry(attempts) {
//	        return err
//	    }
//	    if err := policy.Wait(ctx, attempts); err != nil {
//	        return err
//	    }
//	}
//
// Backoff is linear (BaseDelay * attempt) rather than exponential; with the
// defaults the waits are 5s, 10s before the second and third attempts. Tests
// typically override BaseDelay down to milliseconds.
package retry
