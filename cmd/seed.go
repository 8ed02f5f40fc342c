package cmd

import "strconv"

// parseSeedArg parses the optional positional seed argument:
// "prog <network-file> [<seed>]".
func parseSeedArg(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
