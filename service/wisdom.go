package service

import (
	"fmt"

	"loan-wizard/domain"
)

// SelectWisdom picks the commentary shown with the results. The ladder is
// ordered and exactly one branch fires; the guards overlap, so the order is
// part of the contract: full repayment assistance beats everything, then a
// large aggressive-plan saving, then revolving high-interest debt, then a
// missing emergency fund, then generic encouragement.
func SelectWisdom(snap domain.ResultsSnapshot, form domain.FormModel) string {
	switch {
	case snap.RAPStatus.FullAssistance():
		return "Good news: your income qualifies you for full repayment assistance. " +
			"The government covers your interest while you get on your feet — apply for RAP before your grace period ends."
	case snap.Savings.AggressiveVsMinimum.InterestSaved > WisdomSavingsThreshold:
		return fmt.Sprintf("The aggressive plan would keep $%.0f out of the bank's pocket and in yours. "+
			"If your budget can stretch, that's a remarkable return for a payment bump.",
			snap.Savings.AggressiveVsMinimum.InterestSaved)
	case form.CreditCardBalance > 0 || form.LineOfCreditBalance > 0:
		return "Before putting extra toward your student loan, look at your revolving debt. " +
			"Credit cards and credit lines almost always charge more interest than OSAP does — knock those down first."
	case !form.HasEmergencyFund:
		return "One month of expenses in a savings account changes everything. " +
			"Build a small emergency fund before accelerating loan payments, so a surprise bill never lands on a credit card."
	default:
		return "You're in solid shape. Stay consistent with the recommended plan, " +
			"and revisit the numbers whenever your income changes."
	}
}

// ExtraPaymentWisdom picks the what-if commentary purely by the magnitude
// of the extra payment. Independent of the results ladder.
func ExtraPaymentWisdom(extra float64) string {
	switch {
	case extra <= ExtraTierPocketChange:
		return "Even pocket change moves the needle. A few skipped takeout orders a month, and your payoff date creeps closer."
	case extra <= ExtraTierSteady:
		return "A steady hundred extra is the quiet workhorse of debt payoff — small enough to sustain, big enough to matter."
	case extra <= ExtraTierSerious:
		return "Now we're talking. At this pace you're taking real months off the calendar and real interest off the table."
	case extra <= ExtraTierAggressive:
		return "This is an aggressive push. Make sure your emergency fund stays intact, but if it holds, you'll be done far ahead of schedule."
	default:
		return "Maximum effort! At this rate your loan doesn't stand a chance — just don't starve the rest of your financial life to feed it."
	}
}
