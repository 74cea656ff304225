// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains integrations with third-party providers, currently
// the transactional email client (Resend).
package lib
