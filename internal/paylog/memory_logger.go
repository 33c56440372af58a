package paylog

// Memory keeps messages in call order, for tests that substitute the trail
// sink.
type Memory struct {
	messages []string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Log(message string) error {
	m.messages = append(m.messages, message)
	return nil
}

func (m *Memory) Messages() []string {
	return m.messages
}
