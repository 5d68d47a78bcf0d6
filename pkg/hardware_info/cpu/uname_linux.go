package cpu

import "golang.org/x/sys/unix"

func machine() (string, error) {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uname.Machine[:]), nil
}
