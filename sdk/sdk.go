// Package sdk defines the interfaces between the access-control core and its
// transport collaborators, plus the error types their implementations share.
package sdk
