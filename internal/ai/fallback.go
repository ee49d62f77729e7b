package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// Deterministic fallback content, used whenever the model is
// unconfigured, unreachable, or returns something unparseable. Every
// fallback is non-empty and tagged SourceFallback so callers and the
// UI can tell it apart from model output.

func containsAny(words []string, needles ...string) bool {
	for _, w := range words {
		for _, n := range needles {
			if w == n {
				return true
			}
		}
	}
	return false
}

// fallbackWorkflow picks a canned workflow keyed on keywords in the
// description: email-ish, customer-ish, else generic.
func fallbackWorkflow(description string) *domain.Automation {
	words := strings.Fields(strings.ToLower(description))
	isEmail := containsAny(words, "email", "mail", "newsletter")
	isCustomer := containsAny(words, "customer", "client", "user")
	isReport := containsAny(words, "report", "analytics", "data")

	switch {
	case isEmail:
		return &domain.Automation{
			Name:        "Email Automation Workflow",
			Description: "Automated email workflow based on your requirements",
			Steps: []domain.AutomationStep{
				{ID: "trigger", Title: "Set Email Trigger", Description: "Define when the email should be sent (e.g., user signup, purchase)", Type: domain.StepTrigger, EstimatedTime: "5 minutes", Requirements: []string{"Email platform access", "Trigger criteria"}},
				{ID: "segment", Title: "Audience Segmentation", Description: "Identify and segment your target audience", Type: domain.StepAction, EstimatedTime: "10 minutes", Requirements: []string{"Customer database", "Segmentation criteria"}},
				{ID: "compose", Title: "Create Email Content", Description: "Design and write the email content", Type: domain.StepAction, EstimatedTime: "20 minutes", Requirements: []string{"Email template", "Content guidelines"}},
				{ID: "schedule", Title: "Schedule Delivery", Description: "Set up timing and delivery schedule", Type: domain.StepAction, EstimatedTime: "5 minutes", Requirements: []string{"Scheduling system", "Optimal send times"}},
				{ID: "monitor", Title: "Monitor Performance", Description: "Track open rates, clicks, and conversions", Type: domain.StepAction, EstimatedTime: "Ongoing", Requirements: []string{"Analytics dashboard", "KPI definitions"}},
			},
			EstimatedTotalTime: "40 minutes setup + ongoing monitoring",
			Difficulty:         "medium",
			Tags:               []string{"email", "marketing", "automation"},
			Source:             domain.SourceFallback,
		}
	case isCustomer && !isReport:
		return &domain.Automation{
			Name:        "Customer Onboarding Workflow",
			Description: "Streamlined customer onboarding process",
			Steps: []domain.AutomationStep{
				{ID: "welcome", Title: "Welcome Message", Description: "Send personalized welcome message to new customers", Type: domain.StepTrigger, EstimatedTime: "2 minutes", Requirements: []string{"CRM system", "Welcome template"}},
				{ID: "account-setup", Title: "Account Setup Guide", Description: "Provide step-by-step account setup instructions", Type: domain.StepAction, EstimatedTime: "5 minutes", Requirements: []string{"Setup documentation", "Tutorial videos"}},
				{ID: "followup", Title: "Follow-up Check-in", Description: "Schedule follow-up after 48 hours", Type: domain.StepAction, EstimatedTime: "3 minutes", Requirements: []string{"Scheduling system", "Check-in template"}},
				{ID: "feedback", Title: "Collect Feedback", Description: "Request feedback on onboarding experience", Type: domain.StepAction, EstimatedTime: "2 minutes", Requirements: []string{"Feedback form", "Survey tool"}},
			},
			EstimatedTotalTime: "12 minutes setup",
			Difficulty:         "easy",
			Tags:               []string{"onboarding", "customer", "experience"},
			Source:             domain.SourceFallback,
		}
	default:
		return &domain.Automation{
			Name:        "Custom Business Workflow",
			Description: "Tailored workflow for your business process",
			Steps: []domain.AutomationStep{
				{ID: "analyze", Title: "Process Analysis", Description: "Analyze current process and identify automation opportunities", Type: domain.StepAction, EstimatedTime: "15 minutes", Requirements: []string{"Process documentation", "Stakeholder input"}},
				{ID: "design", Title: "Workflow Design", Description: "Design the automated workflow structure", Type: domain.StepAction, EstimatedTime: "20 minutes", Requirements: []string{"Workflow tools", "Process map"}},
				{ID: "implement", Title: "Implementation", Description: "Set up the automation in your chosen platform", Type: domain.StepAction, EstimatedTime: "30 minutes", Requirements: []string{"Automation platform", "Technical setup"}},
				{ID: "test", Title: "Testing & Validation", Description: "Test the workflow with sample data", Type: domain.StepAction, EstimatedTime: "10 minutes", Requirements: []string{"Test scenarios", "Sample data"}},
				{ID: "deploy", Title: "Deploy & Monitor", Description: "Deploy to production and monitor performance", Type: domain.StepAction, EstimatedTime: "5 minutes", Requirements: []string{"Monitoring tools", "Performance metrics"}},
			},
			EstimatedTotalTime: "80 minutes",
			Difficulty:         "medium",
			Tags:               []string{"automation", "business", "process"},
			Source:             domain.SourceFallback,
		}
	}
}

func fallbackSocialPost(topic string) *domain.SocialPost {
	return &domain.SocialPost{
		Topic:       topic,
		Text:        fmt.Sprintf("Exciting developments in %s! Discover how this can transform your business strategy and drive growth. #Innovation #Business", topic),
		Hashtags:    []string{"Innovation", "Business", "Growth", "Strategy"},
		Description: fmt.Sprintf("Engaging post about %s with business focus", topic),
		ImagePrompt: fmt.Sprintf("Professional business illustration about %s, modern design, clean background", topic),
		Source:      domain.SourceFallback,
	}
}

func fallbackSWOT(businessContext string) *domain.SWOTAnalysis {
	return &domain.SWOTAnalysis{
		Context: businessContext,
		Strengths: []domain.SWOTStrength{
			{ID: "s1", Text: "Established customer relationships", Score: 7},
			{ID: "s2", Text: "Clear value proposition", Score: 6},
			{ID: "s3", Text: "Agile decision making", Score: 6},
		},
		Weaknesses: []domain.SWOTWeakness{
			{ID: "w1", Text: "Limited brand visibility", Severity: domain.RatingMedium},
			{ID: "w2", Text: "Dependency on a small number of channels", Severity: domain.RatingMedium},
			{ID: "w3", Text: "Manual internal processes", Severity: domain.RatingLow},
		},
		Opportunities: []domain.SWOTOpportunity{
			{ID: "o1", Text: "Automation of repetitive workflows", Potential: domain.RatingHigh},
			{ID: "o2", Text: "Expansion into adjacent market segments", Potential: domain.RatingMedium},
			{ID: "o3", Text: "Data-driven decision making", Potential: domain.RatingMedium},
		},
		Threats: []domain.SWOTThreat{
			{ID: "t1", Text: "Increasing competition", Risk: domain.RatingMedium},
			{ID: "t2", Text: "Changing customer expectations", Risk: domain.RatingMedium},
			{ID: "t3", Text: "Economic uncertainty", Risk: domain.RatingLow},
		},
		Recommendations: []string{
			"Invest in marketing to raise brand visibility",
			"Automate the most repetitive internal processes first",
			"Review the competitive landscape quarterly",
		},
		Source: domain.SourceFallback,
	}
}

func fallbackCompetitors(industry, marketScope string) *domain.CompetitorAnalysis {
	share := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	rating := func(s string) *decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return &d
	}
	return &domain.CompetitorAnalysis{
		Industry:    industry,
		MarketScope: marketScope,
		Competitors: []domain.Competitor{
			{ID: "c1", Name: "Established Market Leader", Strengths: []string{"Brand recognition", "Distribution network"}, Weaknesses: []string{"Slow to innovate", "Higher prices"}, MarketShare: share(35), Rating: rating("4.2")},
			{ID: "c2", Name: "Fast-Growing Challenger", Strengths: []string{"Modern product", "Aggressive pricing"}, Weaknesses: []string{"Limited support", "Narrow feature set"}, MarketShare: share(20), Rating: rating("4.0")},
			{ID: "c3", Name: "Niche Specialist", Strengths: []string{"Deep domain expertise"}, Weaknesses: []string{"Small team", "Limited reach"}, MarketShare: share(10), Rating: rating("3.8")},
		},
		KeyTrends: []string{
			"Consolidation around platform offerings",
			"Growing demand for automation and AI features",
			"Price pressure in the mid-market",
		},
		Source: domain.SourceFallback,
	}
}

func fallbackGrowthPlan(businessContext string) *domain.GrowthPlan {
	deadline := time.Now().UTC().Add(growthDeadline)
	return &domain.GrowthPlan{
		Title:       "Quarterly Growth Plan",
		Description: "A baseline growth strategy to refine once live metrics are connected. Context: " + businessContext,
		Goals: []domain.GrowthGoal{
			{ID: "g1", Title: "Grow qualified leads", Metric: "leads/month", Target: decimal.NewFromInt(100), Deadline: deadline},
			{ID: "g2", Title: "Improve conversion rate", Metric: "conversion %", Target: decimal.NewFromInt(5), Deadline: deadline},
			{ID: "g3", Title: "Increase repeat purchases", Metric: "repeat rate %", Target: decimal.NewFromInt(25), Deadline: deadline},
		},
		Tactics: []domain.GrowthTactic{
			{ID: "t1", Title: "Content marketing program", Description: "Publish weekly content targeting core customer questions", Priority: domain.RatingHigh, EstimatedImpact: 7},
			{ID: "t2", Title: "Referral incentives", Description: "Reward existing customers for successful referrals", Priority: domain.RatingMedium, EstimatedImpact: 6},
			{ID: "t3", Title: "Onboarding improvements", Description: "Reduce time-to-value for new signups", Priority: domain.RatingHigh, EstimatedImpact: 8},
			{ID: "t4", Title: "Win-back campaign", Description: "Re-engage dormant customers with targeted offers", Priority: domain.RatingLow, EstimatedImpact: 4},
			{ID: "t5", Title: "Pricing review", Description: "Test packaging changes against conversion data", Priority: domain.RatingMedium, EstimatedImpact: 5},
		},
		Source: domain.SourceFallback,
	}
}

func fallbackAnalysis() *Analysis {
	return &Analysis{
		Summary:         "Analysis temporarily unavailable. Please try again.",
		Insights:        []string{"Unable to generate insights at this time"},
		Recommendations: []string{"Please retry the analysis"},
		Source:          domain.SourceFallback,
	}
}
