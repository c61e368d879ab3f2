// Package smtp provides the SMTP transport used by the reminder sender.
package smtp

import "io"

// Client is the subset of *smtp.Client the sender needs, extracted so
// tests can substitute a fake.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface describes an SMTP transport.
type TransportInterface interface {
	Connect() (Client, error)
	From() string
}
