// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly presentation of query failures.
package httperrors

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"

	apperrors "docquery/cli/internal/errors"

	"github.com/pterm/pterm"
)

// Present prints the failure message followed by troubleshooting hints that fit
// its kind. baseURL names the backend in transport hints.
func Present(err error, baseURL string) {
	if err == nil {
		return
	}

	e, ok := apperrors.As(err)
	if !ok {
		pterm.Error.Println(err.Error())
		return
	}

	pterm.Error.Println(e.Message)
	pterm.Println()

	switch e.Kind {
	case apperrors.Transport:
		showTransportHints(e.Err, ExtractHostFromURL(baseURL))
	case apperrors.Remote:
		showRemoteHints(e.Status)
	case apperrors.Integrity:
		showIntegrityHints()
	case apperrors.Validation:
		// the message already says what is missing
	default:
		showCommonIssues()
	}
}

// IsTimeout checks if the error is a timeout error.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}

	// Check for timeout in error message
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	// Check for net.Error with Timeout()
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// IsDNS checks if the error is a DNS resolution error.
func IsDNS(err error) bool {
	if err == nil {
		return false
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// IsConnectionRefused checks if the error is a connection refused error.
func IsConnectionRefused(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused")
}

// IsTLS checks if the error is an SSL/TLS error.
func IsTLS(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// showTransportHints explains why the backend could not be reached.
func showTransportHints(cause error, host string) {
	switch {
	case IsTimeout(cause):
		pterm.Printf("⏱️  Connection to %s timed out.\n", host)
		pterm.Println("  • Slow internet connection")
		pterm.Println("  • Server is under heavy load")
		pterm.Println("  • Network firewall is blocking the connection")
	case IsDNS(cause):
		pterm.Printf("🌐 Cannot resolve %s.\n", host)
		pterm.Println("  • Check the API base URL for typos")
		pterm.Println("  • Your internet connection is working")
		pterm.Println("  • DNS settings are correct")
	case IsConnectionRefused(cause):
		pterm.Printf("🚫 %s is not accepting connections.\n", host)
		pterm.Println("  • The API server is not running (try 'docquery serve' for a local one)")
		pterm.Println("  • Wrong server address or port")
		pterm.Println("  • Firewall is blocking the connection")
	case IsTLS(cause):
		pterm.Printf("🔒 Secure connection to %s failed.\n", host)
		pterm.Println("  • SSL/TLS certificate issue")
		pterm.Println("  • Network proxy interfering with HTTPS")
		pterm.Println("  • System clock is incorrect")
	default:
		pterm.Printf("❌ Cannot connect to %s.\n", host)
		pterm.Println("  • Your internet connection")
		pterm.Println("  • Whether the API server is running and reachable")
	}
	pterm.Println()
	if cause != nil {
		pterm.Debug.Printf("Technical details: %s\n", shorten(cause.Error()))
	}
	pterm.Println("Run with --demo to try the canned responder without a backend.")
}

// showRemoteHints explains a non-success status.
func showRemoteHints(status int) {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		pterm.Println("The backend rejected the bearer token.")
		pterm.Println("  • Check the token value (pass --token or enter it at the prompt)")
		pterm.Println("  • The token may have expired")
	case status >= 500:
		pterm.Println("⚠️  The API server encountered an internal error.")
		pterm.Println("  • This is not a problem with your input")
		pterm.Println("  • Please try again in a few minutes")
	default:
		showCommonIssues()
	}
}

func showIntegrityHints() {
	pterm.Println("The backend response does not line up with the questions asked,")
	pterm.Println("so no answers are shown. The backend may be running a different API version.")
}

func showCommonIssues() {
	pterm.Println("Common issues:")
	pterm.Println("  • Invalid or inaccessible document URL")
	pterm.Println("  • Network connectivity problems")
	pterm.Println("  • Invalid Bearer token")
	pterm.Println("  • API server temporarily unavailable")
}

func shorten(s string) string {
	if len(s) > 100 {
		return s[:100] + "..."
	}
	return s
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
