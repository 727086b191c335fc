package domain

const (
	SplitMethodEqual      = "equal"
	SplitMethodExact      = "exact"
	SplitMethodPercentage = "percentage"
)

const (
	GroupTypeTrip   = "Trip"
	GroupTypeHome   = "Home"
	GroupTypeEvent  = "Event"
	GroupTypeCustom = "Custom"
)

const (
	SplitStatusActive  = "active"
	SplitStatusSettled = "settled"
)

const (
	ParticipantStatusPending = "pending"
	ParticipantStatusSettled = "settled"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// AmountTolerance bounds float drift when reconciling participant
// paid/share sums against a bill's total.
const AmountTolerance = 0.01

func IsValidSplitMethod(m string) bool {
	switch m {
	case SplitMethodEqual, SplitMethodExact, SplitMethodPercentage:
		return true
	}
	return false
}

func IsValidGroupType(t string) bool {
	switch t {
	case GroupTypeTrip, GroupTypeHome, GroupTypeEvent, GroupTypeCustom:
		return true
	}
	return false
}
