// Package actions implements the workflow commands as composable operations
// over the rebase engine. Actions validate input, build previews for user
// confirmation, and map engine outcomes into typed results; they never
// mutate the repository directly.
package actions
