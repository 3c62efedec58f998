package command

// splitVerb peels the leading action word off a handler's argument list
func splitVerb(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}
