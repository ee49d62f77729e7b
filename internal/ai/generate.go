package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// Analysis is the result of a business-data query
type Analysis struct {
	Summary         string                  `json:"summary"`
	Insights        []string                `json:"insights"`
	Recommendations []string                `json:"recommendations"`
	Source          domain.GenerationSource `json:"source"`
}

// Every generator below follows the same contract: ask the model, decode
// the structured response, and on any failure return a deterministic
// non-empty fallback tagged SourceFallback. Failures never escape the
// facade.

const workflowPromptFormat = `You are a business process automation expert. Create a detailed workflow automation plan for the following business process:

%q

Please respond with a JSON object in this exact format:
{
  "name": "Clear workflow name",
  "description": "Brief description of what this workflow accomplishes",
  "steps": [
    {
      "id": "step-1",
      "title": "Step title",
      "description": "Detailed description of what happens in this step",
      "type": "trigger|action|condition",
      "estimated_time": "e.g., 2 minutes",
      "requirements": ["List of requirements or tools needed"]
    }
  ],
  "estimated_total_time": "Total time estimate",
  "difficulty": "easy|medium|hard",
  "tags": ["relevant", "tags"]
}

Make sure the workflow is practical, actionable, and includes 3-8 specific steps. Focus on real-world implementation.`

type workflowResponse struct {
	Name               string                  `json:"name"`
	Description        string                  `json:"description"`
	Steps              []domain.AutomationStep `json:"steps"`
	EstimatedTotalTime string                  `json:"estimated_total_time"`
	Difficulty         string                  `json:"difficulty"`
	Tags               []string                `json:"tags"`
}

// GenerateWorkflow produces a workflow automation plan for a business
// process description
func (c *Client) GenerateWorkflow(ctx context.Context, description, instructions string) *domain.Automation {
	text, err := c.generateText(ctx, fmt.Sprintf(workflowPromptFormat, description), instructions, false)
	if err != nil {
		log.Warn().Err(err).Msg("Workflow generation failed, using fallback")
		return fallbackWorkflow(description)
	}

	var resp workflowResponse
	if err := decodeResponse(text, &resp); err != nil {
		log.Warn().Err(err).Msg("Workflow response unparseable, using fallback")
		return fallbackWorkflow(description)
	}
	if resp.Name == "" || len(resp.Steps) == 0 {
		log.Warn().Msg("Workflow response missing required fields, using fallback")
		return fallbackWorkflow(description)
	}
	for i := range resp.Steps {
		if err := resp.Steps[i].Validate(); err != nil {
			log.Warn().Err(err).Msg("Workflow response has invalid step, using fallback")
			return fallbackWorkflow(description)
		}
	}

	return &domain.Automation{
		Name:               resp.Name,
		Description:        resp.Description,
		Steps:              resp.Steps,
		EstimatedTotalTime: resp.EstimatedTotalTime,
		Difficulty:         resp.Difficulty,
		Tags:               resp.Tags,
		Source:             domain.SourceModel,
	}
}

const socialPostPromptFormat = `Create an engaging social media post about %q.

Please respond with a JSON object in this exact format:
{
  "text": "Engaging social media post text (150-200 characters)",
  "hashtags": ["relevant", "hashtags", "without", "hash"],
  "description": "Brief description of the post strategy",
  "image_prompt": "Detailed prompt for AI image generation"
}

Make the post engaging, professional, and suitable for business social media accounts.`

type socialPostResponse struct {
	Text        string   `json:"text"`
	Hashtags    []string `json:"hashtags"`
	Description string   `json:"description"`
	ImagePrompt string   `json:"image_prompt"`
}

// GenerateSocialPost produces post copy plus an image-generation prompt
// for a topic
func (c *Client) GenerateSocialPost(ctx context.Context, topic, instructions string) *domain.SocialPost {
	text, err := c.generateText(ctx, fmt.Sprintf(socialPostPromptFormat, topic), instructions, false)
	if err != nil {
		log.Warn().Err(err).Msg("Social post generation failed, using fallback")
		return fallbackSocialPost(topic)
	}

	var resp socialPostResponse
	if err := decodeResponse(text, &resp); err != nil {
		log.Warn().Err(err).Msg("Social post response unparseable, using fallback")
		return fallbackSocialPost(topic)
	}
	if resp.Text == "" {
		log.Warn().Msg("Social post response missing text, using fallback")
		return fallbackSocialPost(topic)
	}

	post := &domain.SocialPost{
		Topic:       topic,
		Text:        resp.Text,
		Hashtags:    resp.Hashtags,
		Description: resp.Description,
		ImagePrompt: resp.ImagePrompt,
		Source:      domain.SourceModel,
	}
	if post.ImagePrompt == "" {
		post.ImagePrompt = fmt.Sprintf("Professional business illustration about %s, modern design, clean background", topic)
	}
	return post
}

const swotPromptFormat = `You are a strategic business analyst. Generate a comprehensive SWOT analysis for the following business:

Business Context: %s

Provide a JSON response with this exact structure:
{
  "strengths": [{"text": "strength description", "score": 1-10}],
  "weaknesses": [{"text": "weakness description", "severity": "low|medium|high"}],
  "opportunities": [{"text": "opportunity description", "potential": "low|medium|high"}],
  "threats": [{"text": "threat description", "risk": "low|medium|high"}],
  "recommendations": ["strategic recommendation 1", "recommendation 2"]
}

Provide 3-5 items for each category.`

type swotResponse struct {
	Strengths []struct {
		Text  string `json:"text"`
		Score int    `json:"score"`
	} `json:"strengths"`
	Weaknesses []struct {
		Text     string `json:"text"`
		Severity string `json:"severity"`
	} `json:"weaknesses"`
	Opportunities []struct {
		Text      string `json:"text"`
		Potential string `json:"potential"`
	} `json:"opportunities"`
	Threats []struct {
		Text string `json:"text"`
		Risk string `json:"risk"`
	} `json:"threats"`
	Recommendations []string `json:"recommendations"`
}

// GenerateSWOT produces a scored SWOT analysis for a business context
func (c *Client) GenerateSWOT(ctx context.Context, businessContext, instructions string) *domain.SWOTAnalysis {
	text, err := c.generateText(ctx, fmt.Sprintf(swotPromptFormat, businessContext), instructions, false)
	if err != nil {
		log.Warn().Err(err).Msg("SWOT generation failed, using fallback")
		return fallbackSWOT(businessContext)
	}

	var resp swotResponse
	if err := decodeResponse(text, &resp); err != nil {
		log.Warn().Err(err).Msg("SWOT response unparseable, using fallback")
		return fallbackSWOT(businessContext)
	}
	if len(resp.Strengths) == 0 && len(resp.Weaknesses) == 0 && len(resp.Opportunities) == 0 && len(resp.Threats) == 0 {
		log.Warn().Msg("SWOT response empty, using fallback")
		return fallbackSWOT(businessContext)
	}

	analysis := &domain.SWOTAnalysis{
		Context:         businessContext,
		Recommendations: resp.Recommendations,
		Source:          domain.SourceModel,
	}
	for i, s := range resp.Strengths {
		score := s.Score
		if score < 1 || score > 10 {
			score = 7
		}
		analysis.Strengths = append(analysis.Strengths, domain.SWOTStrength{
			ID: fmt.Sprintf("s%d", i+1), Text: s.Text, Score: score, AIGenerated: true,
		})
	}
	for i, w := range resp.Weaknesses {
		analysis.Weaknesses = append(analysis.Weaknesses, domain.SWOTWeakness{
			ID: fmt.Sprintf("w%d", i+1), Text: w.Text, Severity: domain.NormalizeRating(w.Severity), AIGenerated: true,
		})
	}
	for i, o := range resp.Opportunities {
		analysis.Opportunities = append(analysis.Opportunities, domain.SWOTOpportunity{
			ID: fmt.Sprintf("o%d", i+1), Text: o.Text, Potential: domain.NormalizeRating(o.Potential), AIGenerated: true,
		})
	}
	for i, t := range resp.Threats {
		analysis.Threats = append(analysis.Threats, domain.SWOTThreat{
			ID: fmt.Sprintf("t%d", i+1), Text: t.Text, Risk: domain.NormalizeRating(t.Risk), AIGenerated: true,
		})
	}
	return analysis
}

const competitorPromptFormat = `You are a market research analyst. Analyze the competitive landscape for:

Industry: %s
Market Scope: %s

Provide a JSON response with this structure:
{
  "competitors": [
    {
      "name": "Competitor Name",
      "strengths": ["strength 1", "strength 2"],
      "weaknesses": ["weakness 1", "weakness 2"],
      "market_share": 25,
      "rating": 4.5
    }
  ],
  "summary": {
    "key_trends": ["trend 1", "trend 2", "trend 3"]
  }
}

Identify 3-5 key competitors.`

type competitorResponse struct {
	Competitors []struct {
		Name        string           `json:"name"`
		Strengths   []string         `json:"strengths"`
		Weaknesses  []string         `json:"weaknesses"`
		MarketShare *decimal.Decimal `json:"market_share"`
		Rating      *decimal.Decimal `json:"rating"`
	} `json:"competitors"`
	Summary struct {
		KeyTrends []string `json:"key_trends"`
	} `json:"summary"`
}

// AnalyzeCompetitors produces a competitive landscape for an industry
func (c *Client) AnalyzeCompetitors(ctx context.Context, industry, marketScope, instructions string) *domain.CompetitorAnalysis {
	text, err := c.generateText(ctx, fmt.Sprintf(competitorPromptFormat, industry, marketScope), instructions, false)
	if err != nil {
		log.Warn().Err(err).Msg("Competitor analysis failed, using fallback")
		return fallbackCompetitors(industry, marketScope)
	}

	var resp competitorResponse
	if err := decodeResponse(text, &resp); err != nil {
		log.Warn().Err(err).Msg("Competitor response unparseable, using fallback")
		return fallbackCompetitors(industry, marketScope)
	}
	if len(resp.Competitors) == 0 {
		log.Warn().Msg("Competitor response empty, using fallback")
		return fallbackCompetitors(industry, marketScope)
	}

	analysis := &domain.CompetitorAnalysis{
		Industry:    industry,
		MarketScope: marketScope,
		KeyTrends:   resp.Summary.KeyTrends,
		Source:      domain.SourceModel,
	}
	for i, comp := range resp.Competitors {
		analysis.Competitors = append(analysis.Competitors, domain.Competitor{
			ID:          fmt.Sprintf("c%d", i+1),
			Name:        comp.Name,
			Strengths:   comp.Strengths,
			Weaknesses:  comp.Weaknesses,
			MarketShare: comp.MarketShare,
			Rating:      comp.Rating,
		})
	}
	return analysis
}

const growthPromptFormat = `You are a growth strategist. Create a comprehensive growth strategy for:

Business Context: %s
Current Metrics: %s
Target Goals: %s

Provide a JSON response with this structure:
{
  "title": "Strategy Title",
  "description": "Strategy overview",
  "goals": [
    {
      "title": "Goal title",
      "metric": "metric name",
      "target": 1000
    }
  ],
  "tactics": [
    {
      "title": "Tactic title",
      "description": "Tactic description",
      "priority": "high|medium|low",
      "estimated_impact": 1-10
    }
  ]
}

Provide 3-5 goals and 5-7 tactics.`

type growthResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Goals       []struct {
		Title  string          `json:"title"`
		Metric string          `json:"metric"`
		Target decimal.Decimal `json:"target"`
	} `json:"goals"`
	Tactics []struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		Priority        string `json:"priority"`
		EstimatedImpact int    `json:"estimated_impact"`
	} `json:"tactics"`
}

// growthDeadline is the default goal horizon when the model gives none
const growthDeadline = 90 * 24 * time.Hour

// GenerateGrowthStrategy produces a growth plan with measurable goals
// and prioritized tactics
func (c *Client) GenerateGrowthStrategy(ctx context.Context, businessContext, currentMetrics, targetGoals, instructions string) *domain.GrowthPlan {
	prompt := fmt.Sprintf(growthPromptFormat, businessContext, currentMetrics, targetGoals)
	text, err := c.generateText(ctx, prompt, instructions, true)
	if err != nil {
		log.Warn().Err(err).Msg("Growth strategy generation failed, using fallback")
		return fallbackGrowthPlan(businessContext)
	}

	var resp growthResponse
	if err := decodeResponse(text, &resp); err != nil {
		log.Warn().Err(err).Msg("Growth response unparseable, using fallback")
		return fallbackGrowthPlan(businessContext)
	}
	if resp.Title == "" || len(resp.Tactics) == 0 {
		log.Warn().Msg("Growth response missing required fields, using fallback")
		return fallbackGrowthPlan(businessContext)
	}

	deadline := time.Now().UTC().Add(growthDeadline)
	plan := &domain.GrowthPlan{
		Title:       resp.Title,
		Description: resp.Description,
		Source:      domain.SourceModel,
	}
	for i, g := range resp.Goals {
		plan.Goals = append(plan.Goals, domain.GrowthGoal{
			ID:       fmt.Sprintf("g%d", i+1),
			Title:    g.Title,
			Metric:   g.Metric,
			Target:   g.Target,
			Deadline: deadline,
		})
	}
	for i, t := range resp.Tactics {
		impact := t.EstimatedImpact
		if impact < 1 || impact > 10 {
			impact = 5
		}
		plan.Tactics = append(plan.Tactics, domain.GrowthTactic{
			ID:              fmt.Sprintf("t%d", i+1),
			Title:           t.Title,
			Description:     t.Description,
			Priority:        domain.NormalizeRating(t.Priority),
			EstimatedImpact: impact,
		})
	}
	return plan
}

const analysisPromptFormat = `You are a Business Intelligence analyst. Analyze the following query and provide insights.

Query: %s
%s
Provide a JSON response with the following structure:
{
  "summary": "Brief overview of the analysis",
  "insights": ["insight 1", "insight 2", "insight 3"],
  "recommendations": ["recommendation 1", "recommendation 2", "recommendation 3"]
}`

// AnalyzeBusinessData answers a BI query over optional serialized data
// rows. Before falling back it tries to salvage bullet points out of a
// free-text response.
func (c *Client) AnalyzeBusinessData(ctx context.Context, query, data, instructions string) *Analysis {
	dataSection := ""
	if data != "" {
		dataSection = "\nData: " + data + "\n"
	}
	text, err := c.generateText(ctx, fmt.Sprintf(analysisPromptFormat, query, dataSection), instructions, true)
	if err != nil {
		log.Warn().Err(err).Msg("Business analysis failed, using fallback")
		return fallbackAnalysis()
	}

	var resp Analysis
	if err := decodeResponse(text, &resp); err == nil && resp.Summary != "" {
		resp.Source = domain.SourceModel
		return &resp
	}

	// Free-text answer: salvage bullet points before giving up
	insights := extractBulletPoints(text, "insights")
	recommendations := extractBulletPoints(text, "recommendations")
	if len(insights) > 0 || len(recommendations) > 0 {
		return &Analysis{
			Summary:         strings.TrimSpace(text),
			Insights:        insights,
			Recommendations: recommendations,
			Source:          domain.SourceModel,
		}
	}
	return fallbackAnalysis()
}

// extractBulletPoints pulls dash/bullet lines out of the named section
// of a free-text response
func extractBulletPoints(text, section string) []string {
	var points []string
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(strings.ToLower(trimmed), strings.ToLower(section)) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "*") {
			points = append(points, strings.TrimSpace(strings.TrimLeft(trimmed, "-•* ")))
			continue
		}
		if trimmed == "" && len(points) > 0 {
			break
		}
	}
	return points
}
