package tui

// UI Text Constants
const (
	TextTitle           = "🐕 Random Dog Image"
	TextLoading         = "Loading..."
	TextButton          = "Get Another Dog"
	TextInvalidResponse = "Invalid response from API"

	// Hint shown under errors, followed by the backend URL
	TextServerHint = "Make sure the server is running on "

	TextFooter = "Press 'r' or Enter for another dog | Press 'q' or Ctrl+C to quit"
)
