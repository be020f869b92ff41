package services

import (
	"context"
	"errors"
	"net"
	"net/textproto"
	"strings"
)

type MailErrorCode string

const (
	MailErrAuth       MailErrorCode = "EAUTH"
	MailErrConnection MailErrorCode = "ECONNECTION"
	MailErrTimeout    MailErrorCode = "ETIMEDOUT"
	MailErrConfig     MailErrorCode = "ECONFIG"
	MailErrUnknown    MailErrorCode = "EUNKNOWN"
)

// MailFailure is a delivery error translated for the API caller.
type MailFailure struct {
	Code            MailErrorCode `json:"code"`
	Message         string        `json:"error"`
	Suggestion      string        `json:"suggestion"`
	Troubleshooting []string      `json:"troubleshooting,omitempty"`
	Err             error         `json:"-"`
}

func (f *MailFailure) Error() string {
	if f.Err == nil {
		return string(f.Code) + ": " + f.Message
	}
	return string(f.Code) + ": " + f.Message + ": " + f.Err.Error()
}

func (f *MailFailure) Unwrap() error { return f.Err }

// Retryable reports whether trying again later might succeed.
func (f *MailFailure) Retryable() bool {
	return f.Code == MailErrConnection || f.Code == MailErrTimeout
}

var authMarkers = []string{
	"authentication failed", "username and password not accepted", "invalid login",
	"invalidclienttokenid", "signaturedoesnotmatch", "unrecognizedclientexception",
	"missing credentials", "accessdenied",
}

var connectionMarkers = []string{
	"connection refused", "no such host", "connection reset", "failed to connect",
	"failed to start tls", "network is unreachable", "broken pipe", "eof",
}

// ClassifyMailError maps a delivery error onto the small set of codes the client
// understands. Already-classified failures are returned unchanged.
func ClassifyMailError(err error) *MailFailure {
	if err == nil {
		return nil
	}
	var mf *MailFailure
	if errors.As(err, &mf) {
		return mf
	}

	switch code := classify(err); code {
	case MailErrConfig:
		return &MailFailure{
			Code:       code,
			Message:    "Email is not configured on this server",
			Suggestion: "Set MAIL_DRIVER and the matching SMTP or AWS settings, then restart the server.",
			Troubleshooting: []string{
				"MAIL_DRIVER must be smtp or ses",
				"MAIL_FROM must be a verified sender address",
			},
			Err: err,
		}
	case MailErrAuth:
		return &MailFailure{
			Code:       code,
			Message:    "Email authentication failed",
			Suggestion: "Check the email credentials configured on the server.",
			Troubleshooting: []string{
				"Verify SMTP_USERNAME and SMTP_PASSWORD",
				"Gmail accounts need an App Password when 2-step verification is on",
				"For SES, check the AWS access key and that the sender is verified",
			},
			Err: err,
		}
	case MailErrTimeout:
		return &MailFailure{
			Code:       code,
			Message:    "Email sending timed out",
			Suggestion: "The mail server is slow or unreachable. Please try again in a moment.",
			Troubleshooting: []string{
				"Check outbound network access to the mail server",
				"Increase EMAIL_TIMEOUT_SECONDS if the server is consistently slow",
			},
			Err: err,
		}
	case MailErrConnection:
		return &MailFailure{
			Code:       code,
			Message:    "Could not connect to the email server",
			Suggestion: "Please try again later.",
			Troubleshooting: []string{
				"Verify SMTP_HOST and SMTP_PORT",
				"Port 587 expects STARTTLS (SMTP_USE_TLS=true)",
				"Check firewall rules for outbound SMTP",
			},
			Err: err,
		}
	default:
		return &MailFailure{
			Code:       MailErrUnknown,
			Message:    "Failed to send email",
			Suggestion: "Please try again later or contact support.",
			Err:        err,
		}
	}
}

func classify(err error) MailErrorCode {
	if errors.Is(err, ErrMailDisabled) {
		return MailErrConfig
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return MailErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return MailErrTimeout
	}

	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535, 538:
			return MailErrAuth
		case 421:
			return MailErrConnection
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out") {
		return MailErrTimeout
	}
	for _, m := range authMarkers {
		if strings.Contains(msg, m) {
			return MailErrAuth
		}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return MailErrConnection
	}
	for _, m := range connectionMarkers {
		if strings.Contains(msg, m) {
			return MailErrConnection
		}
	}
	return MailErrUnknown
}
