// Councilconf reads council protocol configuration files and answers
// queries against them.
//
// Every command writes JSON to stdout. Failures are written to stdout as
// {"error": "..."} with exit status 1; logs go to stderr.
//
// Usage:
//
//	# Print one section of the protocol file
//	councilconf get resource_budget.time.total
//
//	# Print the whole parsed document
//	councilconf dump --file protocols/standard.yaml
//
//	# Check that a file parses, listing warnings
//	councilconf check --backend native
//
//	# Show how scalar text is typed
//	councilconf coerce 42 3.14 yes '"quoted"'
//
//	# Keep the file loaded and reload it on change
//	councilconf watch --config councilconf.yaml
package main

func main() {
	Execute()
}
