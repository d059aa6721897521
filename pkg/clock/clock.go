package clock

import "time"

type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

func New() Clock {
	return System{}
}

// Fixed 测试用的可调时钟
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

func (f *Fixed) Add(d time.Duration) {
	f.T = f.T.Add(d)
}
