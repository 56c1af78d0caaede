//go:build windows

package process

import "syscall"

func newGroupAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{}
}
