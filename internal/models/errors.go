package models

import (
	"errors"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrReferenceNotFound = errors.New("a resource ID you specified does not identify an existing resource")
	ErrResourceInUse     = errors.New("the resource is still referenced by other resources and cannot be deleted")
	ErrAmountNotPositive = errors.New("the amount must be positive")
	ErrRecurringInvalid  = errors.New("recurring expenses need a frequency of Weekly, Monthly or Yearly")
)

// User errors
var (
	ErrUserEmailNotUnique = errors.New("a user with this email address already exists")
	ErrUserEmailEmpty     = errors.New("the email address must not be empty")
	ErrUserDescription    = errors.New("the description must be one of student, employee or unemployed")
	ErrUserChallenge      = errors.New("the budgeting challenge must be one of overspending, saving or tracking")
	ErrUserPriority       = errors.New("the spending priority must be one of essentials, wants or savings")
	ErrUserConfidence     = errors.New("the confidence level must be one of 1, 5 or 10")
)

// Wallet errors
var (
	ErrWalletNameNotUnique    = errors.New("you already have a wallet with this name")
	ErrWalletNameEmpty        = errors.New("the wallet name must not be empty")
	ErrWalletOwnerNotMatching = errors.New("the wallet belongs to another user")
)

// Category errors
var (
	ErrCategoryNameNotUnique    = errors.New("a category with this name already exists")
	ErrCategoryNameEmpty        = errors.New("the category name must not be empty")
	ErrCategoryKindInvalid      = errors.New("expense categories need a kind of Need, Want or Savings, income categories must not have one")
	ErrCategoryDefaultImmutable = errors.New("default categories cannot be changed or deleted")
	ErrCategoryKindAllocated    = errors.New("the kind of a category with budget allocations cannot be changed")
	ErrCategoryOwnerNotMatching = errors.New("the category belongs to another user")
	ErrCategoryTransactionType  = errors.New("the category does not match the transaction type")
	ErrTransactionTypeInvalid   = errors.New("the transaction type must be Expense or Income")
)

// Match rule errors
var (
	ErrMatchRuleMatchEmpty       = errors.New("the match of a match rule must not be empty")
	ErrMatchRuleCategoryMismatch = errors.New("match rules can only assign expense categories")
)

// Budget errors
var (
	ErrBudgetRuleInvalid           = errors.New("the budget rule must be one of 50-30-20, 70-20-10 or custom")
	ErrBudgetPeriodInvalid         = errors.New("the budget period must be one of Weekly, Monthly or Yearly")
	ErrBudgetIncomeNotPositive     = errors.New("the total income of a budget must be positive")
	ErrAllocationNotUnique         = errors.New("the budget already has an allocation for this category and wallet")
	ErrAllocationKindInvalid       = errors.New("the category kind of an allocation must be Need, Want or Savings")
	ErrAllocationAmountNotPositive = errors.New("the allocated amount must be positive")
)
