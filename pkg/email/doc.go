// Package email defines the rendering and transport contracts for outbound
// appointment notifications, with a Postmark-backed transport for production
// and a disk-writing transport for local development.
//
// # Architecture
//
// The package is built around two small interfaces. Renderer turns a template
// key plus a flat field set into a ready-to-send Message; Transport delivers
// it. The notification core composes both but depends only on the contracts,
// so providers can be swapped without touching delivery logic.
//
// TemplateRegistry is the default Renderer, backed by HTML and plain-text
// templates embedded in the binary, one pair per appointment notification
// type. An unknown template key fails with ErrTemplateNotFound; callers must
// treat that as fatal rather than retryable.
//
// # Usage
//
//	renderer := email.MustNewTemplateRegistry()
//
//	transport, err := email.NewPostmarkTransport(email.Config{
//	    PostmarkServerToken:  "server-token",
//	    PostmarkAccountToken: "account-token",
//	    SenderEmail:          "noreply@example.com",
//	    SupportEmail:         "support@example.com",
//	})
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	msg, err := renderer.Render(ctx, email.TemplateConfirmation, fields)
//	if err != nil {
//	    return err
//	}
//	msg.To = "customer@example.com"
//
//	result, err := transport.Send(ctx, msg)
//
// Development mode saves messages locally instead:
//
//	transport := email.NewDevTransport("./email-output")
//
// # Error Handling
//
// Sentinel errors support programmatic checks with errors.Is:
//   - ErrTemplateNotFound: unrecognized template key (not retryable)
//   - ErrRenderFailed: template execution failed
//   - ErrInvalidMessage: message validation failed
//   - ErrFailedToSend: transport-level delivery failure
//   - ErrInvalidConfig: transport configuration is incomplete
package email
