/*
Package cli provides command-line helpers used by the councilconf command.

Output Formatting:

Command results go to stdout as JSON (or text for human-oriented commands):

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, value); err != nil {
		return err
	}

Failures are reported on stdout as a single JSON object so callers that
consume the output never have to parse stderr:

	cli.WriteError(os.Stdout, "Config section not found: a.b")
	// {"error": "Config section not found: a.b"}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler()
	defer stop()
*/
package cli
