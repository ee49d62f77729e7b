package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// An unconfigured client exercises the full fallback path: the facade
// must return usable, non-empty artifacts without ever surfacing an
// error.

func unconfiguredClient() *Client {
	return &Client{}
}

func TestGenerateWorkflow_FallbackNeverEmpty(t *testing.T) {
	c := unconfiguredClient()

	for _, description := range []string{
		"send a weekly email newsletter to subscribers",
		"onboard new customers after signup",
		"sync inventory between warehouses",
	} {
		workflow := c.GenerateWorkflow(context.Background(), description, "")
		require.NotNil(t, workflow, "description %q", description)
		assert.Equal(t, domain.SourceFallback, workflow.Source)
		assert.NotEmpty(t, workflow.Name)
		assert.GreaterOrEqual(t, len(workflow.Steps), 3)
		assert.LessOrEqual(t, len(workflow.Steps), 8)
		for _, step := range workflow.Steps {
			assert.NoError(t, step.Validate())
		}
	}
}

func TestGenerateWorkflow_FallbackKeyedOnDescription(t *testing.T) {
	c := unconfiguredClient()

	email := c.GenerateWorkflow(context.Background(), "automate our email newsletter", "")
	assert.Equal(t, "Email Automation Workflow", email.Name)

	customer := c.GenerateWorkflow(context.Background(), "welcome new customer accounts", "")
	assert.Equal(t, "Customer Onboarding Workflow", customer.Name)

	generic := c.GenerateWorkflow(context.Background(), "sync inventory nightly", "")
	assert.Equal(t, "Custom Business Workflow", generic.Name)
}

func TestGenerateSocialPost_FallbackMentionsTopic(t *testing.T) {
	c := unconfiguredClient()

	post := c.GenerateSocialPost(context.Background(), "sustainable packaging", "")
	assert.Equal(t, domain.SourceFallback, post.Source)
	assert.NotEmpty(t, post.Text)
	assert.NotEmpty(t, post.ImagePrompt)
	assert.NotEmpty(t, post.Hashtags)
}

func TestGenerateSWOT_FallbackHasAllQuadrants(t *testing.T) {
	c := unconfiguredClient()

	swot := c.GenerateSWOT(context.Background(), "regional coffee roaster", "")
	assert.Equal(t, domain.SourceFallback, swot.Source)
	require.NotEmpty(t, swot.Strengths)
	require.NotEmpty(t, swot.Weaknesses)
	require.NotEmpty(t, swot.Opportunities)
	require.NotEmpty(t, swot.Threats)
	for _, s := range swot.Strengths {
		assert.GreaterOrEqual(t, s.Score, 1)
		assert.LessOrEqual(t, s.Score, 10)
	}
}

func TestAnalyzeCompetitors_FallbackNonEmpty(t *testing.T) {
	c := unconfiguredClient()

	analysis := c.AnalyzeCompetitors(context.Background(), "coffee", "regional", "")
	assert.Equal(t, domain.SourceFallback, analysis.Source)
	assert.NotEmpty(t, analysis.Competitors)
	assert.NotEmpty(t, analysis.KeyTrends)
	assert.Equal(t, "coffee", analysis.Industry)
	assert.Equal(t, "regional", analysis.MarketScope)
}

func TestGenerateGrowthStrategy_FallbackNonEmpty(t *testing.T) {
	c := unconfiguredClient()

	plan := c.GenerateGrowthStrategy(context.Background(), "ctx", "{}", "double revenue", "")
	assert.Equal(t, domain.SourceFallback, plan.Source)
	require.NotEmpty(t, plan.Goals)
	require.NotEmpty(t, plan.Tactics)
	for _, tac := range plan.Tactics {
		assert.GreaterOrEqual(t, tac.EstimatedImpact, 1)
		assert.LessOrEqual(t, tac.EstimatedImpact, 10)
	}
}

func TestAnalyzeBusinessData_FallbackNonEmpty(t *testing.T) {
	c := unconfiguredClient()

	analysis := c.AnalyzeBusinessData(context.Background(), "top products by revenue", "", "")
	assert.Equal(t, domain.SourceFallback, analysis.Source)
	assert.NotEmpty(t, analysis.Summary)
	assert.NotEmpty(t, analysis.Insights)
	assert.NotEmpty(t, analysis.Recommendations)
}

func TestExtractBulletPoints(t *testing.T) {
	text := "Here are the insights:\n- Revenue grew 12%\n- Churn is flat\n\nRecommendations:\n* Invest in retention\n"

	insights := extractBulletPoints(text, "insights")
	require.Len(t, insights, 2)
	assert.Equal(t, "Revenue grew 12%", insights[0])

	recs := extractBulletPoints(text, "recommendations")
	require.Len(t, recs, 1)
	assert.Equal(t, "Invest in retention", recs[0])
}
