package local

type Counter struct {
	dir          string
	pattern      string
	sidecarGlobs []string
}

func NewCounter(dir, pattern string, sidecarGlobs []string) Counter {
	return Counter{dir: dir, pattern: pattern, sidecarGlobs: sidecarGlobs}
}

func (c Counter) CountArtifacts() (int, error) {
	artifacts, err := ListArtifacts(c.dir, c.pattern, c.sidecarGlobs)
	if err != nil {
		return 0, err
	}
	return len(artifacts), nil
}
