package device

import "github.com/dukaforge/sedctl/pkg/sed"

// Fake is a scripted Client and KeyServer for tests. Every operation
// returns Result, records its name and arguments in Calls, and exposes
// Word through Completion.
type Fake struct {
	Result int
	Word   sed.CompletionWord
	Calls  []string
}

func (f *Fake) record(call string) int {
	f.Calls = append(f.Calls, call)
	return f.Result
}

func (f *Fake) Discover(path string) int         { return f.record("discover " + path) }
func (f *Fake) TakeOwnership(path string) int    { return f.record("take-ownership " + path) }
func (f *Fake) ActivateLSP(path string) int      { return f.record("activate-lsp " + path) }
func (f *Fake) SetupGlobalRange(path string) int { return f.record("setup-global-range " + path) }
func (f *Fake) LockUnlock(path, accessType string) int {
	return f.record("lock-unlock " + path + " " + accessType)
}
func (f *Fake) Revert(path string) int            { return f.record("revert " + path) }
func (f *Fake) Completion() sed.CompletionWord    { return f.Word }
func (f *Fake) ConnectionTest() int               { return f.record("connection-test") }
func (f *Fake) AssignKey(object, keyID string) int {
	return f.record("assign-key " + object + " " + keyID)
}
func (f *Fake) BackupKey(object, keyID string) int {
	return f.record("backup-key " + object + " " + keyID)
}
