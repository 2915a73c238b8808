// Package batch reads word lists from files.
package batch
