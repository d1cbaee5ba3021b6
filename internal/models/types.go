package models

import "golang.org/x/exp/slices"

// CategoryKind classifies expense categories for rule-based budgeting.
type CategoryKind string

const (
	KindNeed    CategoryKind = "Need"
	KindWant    CategoryKind = "Want"
	KindSavings CategoryKind = "Savings"
)

// CategoryKinds lists all kinds in the order budgets present them.
var CategoryKinds = []CategoryKind{KindNeed, KindWant, KindSavings}

func (k CategoryKind) Valid() bool {
	return slices.Contains(CategoryKinds, k)
}

type TransactionType string

const (
	TransactionExpense TransactionType = "Expense"
	TransactionIncome  TransactionType = "Income"
)

func (t TransactionType) Valid() bool {
	return t == TransactionExpense || t == TransactionIncome
}

// BudgetRule is the percentage split a budget follows.
type BudgetRule string

const (
	Rule503020 BudgetRule = "50-30-20"
	Rule702010 BudgetRule = "70-20-10"
	RuleCustom BudgetRule = "custom"
)

var BudgetRules = []BudgetRule{Rule503020, Rule702010, RuleCustom}

func (r BudgetRule) Valid() bool {
	return slices.Contains(BudgetRules, r)
}

type Period string

const (
	PeriodWeekly  Period = "Weekly"
	PeriodMonthly Period = "Monthly"
	PeriodYearly  Period = "Yearly"
)

var Periods = []Period{PeriodWeekly, PeriodMonthly, PeriodYearly}

func (p Period) Valid() bool {
	return slices.Contains(Periods, p)
}

// UserDescription is what the user answered when asked what describes them best.
type UserDescription string

const (
	DescriptionStudent    UserDescription = "student"
	DescriptionEmployee   UserDescription = "employee"
	DescriptionUnemployed UserDescription = "unemployed"
)

var UserDescriptions = []UserDescription{DescriptionStudent, DescriptionEmployee, DescriptionUnemployed}

func (d UserDescription) Valid() bool {
	return slices.Contains(UserDescriptions, d)
}

type BudgetingChallenge string

const (
	ChallengeOverspending BudgetingChallenge = "overspending"
	ChallengeSaving       BudgetingChallenge = "saving"
	ChallengeTracking     BudgetingChallenge = "tracking"
)

var BudgetingChallenges = []BudgetingChallenge{ChallengeOverspending, ChallengeSaving, ChallengeTracking}

func (c BudgetingChallenge) Valid() bool {
	return slices.Contains(BudgetingChallenges, c)
}

type SpendingPriority string

const (
	PriorityEssentials SpendingPriority = "essentials"
	PriorityWants      SpendingPriority = "wants"
	PrioritySavings    SpendingPriority = "savings"
)

var SpendingPriorities = []SpendingPriority{PriorityEssentials, PriorityWants, PrioritySavings}

func (p SpendingPriority) Valid() bool {
	return slices.Contains(SpendingPriorities, p)
}

// ConfidenceLevel is how confident the user feels about budgeting.
type ConfidenceLevel int

const (
	ConfidenceNone     ConfidenceLevel = 1
	ConfidenceSome     ConfidenceLevel = 5
	ConfidenceVeryHigh ConfidenceLevel = 10
)

var ConfidenceLevels = []ConfidenceLevel{ConfidenceNone, ConfidenceSome, ConfidenceVeryHigh}

func (l ConfidenceLevel) Valid() bool {
	return slices.Contains(ConfidenceLevels, l)
}
