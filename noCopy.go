package erased

// noCopy makes "go vet" report an Any that is copied by assignment.
// See https://golang.org/issues/8005#issuecomment-190753527
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
