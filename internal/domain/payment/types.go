package payment

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

type Method string

const (
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
	MethodCash     Method = "cash"
	MethodGateway  Method = "gateway"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodCard, MethodTransfer, MethodCash, MethodGateway:
		return true
	default:
		return false
	}
}

func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", ErrInvalidMethod
	}
	return m, nil
}
