package procmounts

// Entry represents an entry in the mount table
type Entry struct {
	Device     string
	MountPoint string
	FSType     string
	Options    string
}

// NotMountedError indicates that no filesystem of the wanted type is
// present in the mount table. The tool cannot create the mount itself,
// so this is fatal for the invocation.
type NotMountedError struct {
	FSType string
}

func (e *NotMountedError) Error() string {
	return e.FSType + " is not mounted"
}

// FindByType returns the mount point of the first entry whose filesystem
// type equals fstype. Table order is preserved from the kernel, so with
// multiple mounts of the same type the first one is authoritative.
//
// The match is against the filesystem-type field only, never against the
// device or mount point.
func FindByType(entries []Entry, fstype string) (string, error) {
	for _, e := range entries {
		if e.FSType == fstype {
			return e.MountPoint, nil
		}
	}
	return "", &NotMountedError{FSType: fstype}
}
