package piistream

// pick helpers resolve flag vs. config precedence: the CLI value wins when
// it differs from the flag default, then local config, then global.

func pickString(cli string, def string, local, global *string) string {
	if cli != def {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

func pickInt(cli int, def int, local, global *int) int {
	if cli != def {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func pickFloat(cli float64, def float64, local, global *float64) float64 {
	if cli != def {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func pickSlice(cli []string, local, global []string) []string {
	if len(cli) > 0 {
		return cli
	}
	if len(local) > 0 {
		return local
	}
	return global
}
