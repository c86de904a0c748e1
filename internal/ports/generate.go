// Package ports defines the interfaces between the static site core, the HTTP
// adapter and the infrastructure that backs them.
package ports
