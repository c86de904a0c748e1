//go:build windows

package infrastructure

func isNotDir(err error) bool {
	return false
}
