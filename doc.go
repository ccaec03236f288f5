// Package histsearch provides the engine behind a reverse incremental
// search prompt: type a fragment, see the most recent matching history
// entry, accept it with cursor placement metadata for the calling shell.
//
// The package is organized around four pieces:
//
//   - EntryScanner decodes a NUL-delimited byte stream into history
//     entries, silently dropping chunks that are not valid UTF-8 (the
//     drop count is available for diagnostics).
//   - ReplayBuffer wraps the forward-only entry stream so every keystroke
//     can re-scan it from the start without re-reading stdin.
//   - Search is the prompt state machine: it turns key events into state
//     transitions, scanning the stream for the first entry whose
//     lowercase form contains the lowercase query.
//   - The renderer maps prompt and entry text to terminal cursor
//     movements, highlighting every occurrence of the query and keeping
//     the cursor math correct across line wrapping, wide characters, and
//     terminal resizes.
//
// A session looks like:
//
//	terminal, err := histsearch.OpenTerminal()
//	if err != nil {
//		// fatal: the prompt cannot run without a controlling terminal
//	}
//	defer terminal.Close()
//
//	scanner := histsearch.NewEntryScanner(os.Stdin)
//	history := histsearch.NewReplayBuffer(scanner.Next)
//	s, err := histsearch.New(terminal, history)
//	if err != nil {
//		return err
//	}
//	result, selected, err := s.Run()
//
// Key bindings (see NewDefaultKeyMap):
//
//   - Printable characters narrow the query; Backspace widens it. Both
//     restart the stream scan from the beginning.
//   - Ctrl+R advances to the next older match without restarting.
//   - Enter accepts the match for execution; Left, Right, Home and End
//     accept it for editing, adjusting the reported cursor position.
//   - Escape, Ctrl+C and Ctrl+G cancel. Accept keys also cancel when the
//     query matches nothing.
//
// Concurrency:
//
// A Search instance is single-threaded: the event loop blocks on one key
// at a time and polls a resize notification channel between keys. No
// state is shared across goroutines apart from that channel.
package histsearch
