//go:build windows

package importer

import "golang.org/x/sys/windows"

func freeBytes(path string) (int64, error) {
	var free uint64
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &free, nil, nil); err != nil {
		return 0, err
	}
	return int64(free), nil
}
