package cli

func (c *RootCommand) initFlags() {
	flags := c.PersistentFlags()

	flags.StringVarP(
		&c.Options.ConfigPath,
		"config",
		"c",
		"",
		"Path to the .env configuration file",
	)
	flags.IntVar(
		&c.Options.Capacity,
		"capacity",
		0,
		"Requested table capacity, squared into the slot count (overrides CHAINHASH_CAPACITY when set)",
	)
	flags.BoolVar(
		&c.Options.JSON,
		"json",
		false,
		"Print the report as JSON",
	)
}
