// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	apperrors "docquery/cli/internal/errors"
	"docquery/cli/internal/model"

	"go.uber.org/zap"
)

const (
	minMockDelay    = 2000 * time.Millisecond
	mockDelaySpread = 1000 * time.Millisecond
	// fallbackExcerpt is how many characters of an unmatched question are quoted back.
	fallbackExcerpt = 50
	// fallbackFirstPage is the page cited for the first unmatched question.
	fallbackFirstPage = 5
)

// Mock implements API with canned, keyword-matched answers after a simulated delay.
// It never touches the network and only fails when the caller cancels ctx.
type Mock struct {
	delay  func() time.Duration
	logger *zap.Logger
}

// NewMock creates the demo responder.
func NewMock(logger *zap.Logger) *Mock {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mock{delay: randomDelay, logger: logger}
}

// randomDelay is uniform in [2s, 3s).
func randomDelay() time.Duration {
	return minMockDelay + time.Duration(rand.Int63n(int64(mockDelaySpread)))
}

// Query waits for the simulated latency and answers every question in order.
func (m *Mock) Query(ctx context.Context, req model.Request) (model.Response, error) {
	d := m.delay()
	m.logger.Debug("demo query", zap.Int("questions", len(req.Questions)), zap.Duration("delay", d))

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return model.Response{}, apperrors.Wrap(apperrors.Unexpected, msgUnexpected, ctx.Err())
	case <-timer.C:
	}

	answers := make([]model.Answer, len(req.Questions))
	for i, q := range req.Questions {
		answers[i] = answerFor(q, i)
	}
	return model.Response{Answers: answers}, nil
}

// rule maps any of its keywords to a fixed answer.
type rule struct {
	keywords  []string
	answer    string
	clause    string
	section   string
	page      int
	rationale string
}

// rules are scanned top to bottom; the first rule with a matching keyword wins.
// Keywords overlap ("grace period" also matches "period"), so order is significant.
var rules = []rule{
	{
		keywords:  []string{"maternity", "pregnancy"},
		answer:    "Yes, maternity benefits are covered after a 10-month waiting period with coverage up to ₹50,000 per delivery.",
		clause:    "Maternity Benefits: The policy covers normal delivery, cesarean section, and pre/post-natal expenses up to the sum insured limit of ₹50,000 per delivery, subject to a waiting period of 10 months from the policy commencement date.",
		section:   "MATERNITY BENEFITS",
		page:      15,
		rationale: "This clause explicitly outlines maternity coverage including the waiting period, coverage amount, and types of expenses covered.",
	},
	{
		keywords:  []string{"grace", "payment"},
		answer:    "The grace period for premium payment is 30 days for monthly premiums and 15 days for annual premiums.",
		clause:    "Grace Period: A grace period of thirty (30) days for monthly premium payment mode and fifteen (15) days for annual premium payment mode shall be allowed for the payment of renewal premium during which period the policy shall remain in force.",
		section:   "PREMIUM PAYMENT",
		page:      8,
		rationale: "This section clearly defines the grace period duration based on the premium payment frequency.",
	},
	{
		keywords:  []string{"waiting", "period"},
		answer:    "Pre-existing diseases have a 48-month waiting period, while specific diseases like cataract, hernia have a 24-month waiting period.",
		clause:    "Waiting Period: Pre-existing diseases are covered after 48 months. Specific diseases including but not limited to Cataract, Benign Prostatic Hypertrophy, Hernia, Hydrocele are covered after 24 months from policy inception.",
		section:   "WAITING PERIODS",
		page:      12,
		rationale: "The policy clearly distinguishes between different types of waiting periods based on the nature of the medical condition.",
	},
	{
		keywords:  []string{"exclusion", "not covered"},
		answer:    "Cosmetic surgery, dental treatment (unless due to accident), and treatment outside India are excluded from coverage.",
		clause:    "The following are not covered under this policy: (a) Cosmetic or plastic surgery unless necessitated due to an accident, (b) Dental treatment unless requiring hospitalization, (c) Treatment taken outside India, (d) Self-inflicted injuries.",
		section:   "EXCLUSIONS",
		page:      22,
		rationale: "This exclusions clause specifically lists treatments and conditions that are not covered under the policy terms.",
	},
	{
		keywords:  []string{"claim", "process"},
		answer:    "Claims must be intimated within 24 hours of hospitalization and all documents must be submitted within 30 days of discharge.",
		clause:    "Claim Intimation: The insured must intimate the claim within 24 hours of hospitalization or as soon as reasonably possible. All claim documents including discharge summary, bills, and investigation reports must be submitted within 30 days of discharge.",
		section:   "CLAIM PROCEDURES",
		page:      18,
		rationale: "This clause establishes the timeline requirements for both claim intimation and document submission to ensure timely processing.",
	},
}

func (r rule) matches(lower string) bool {
	for _, k := range r.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// answerFor returns the canned answer for the question at position index.
func answerFor(question string, index int) model.Answer {
	lower := strings.ToLower(question)
	for _, r := range rules {
		if r.matches(lower) {
			return model.Answer{
				Answer:    r.answer,
				Clause:    r.clause,
				Section:   r.section,
				Page:      model.Page(r.page),
				Rationale: r.rationale,
			}
		}
	}
	return fallbackAnswer(question, index)
}

// fallbackAnswer echoes the question so unmatched answers still differ per question.
func fallbackAnswer(question string, index int) model.Answer {
	lower := strings.ToLower(question)
	topic := "policy conditions"
	if strings.Contains(lower, "cover") {
		topic = "coverage terms"
	}
	excerpt := truncateRunes(question, fallbackExcerpt)

	words := strings.Split(lower, " ")
	if len(words) > 3 {
		words = words[:3]
	}

	return model.Answer{
		Answer:    fmt.Sprintf(`Based on the policy document, the question "%s..." relates to %s as outlined in the relevant sections.`, excerpt, topic),
		Clause:    fmt.Sprintf(`The policy states that "%s..." is addressed under the general terms and conditions with specific provisions for eligibility and coverage limits.`, excerpt),
		Section:   "GENERAL CONDITIONS",
		Page:      model.Page(fallbackFirstPage + index),
		Rationale: fmt.Sprintf("This clause provides the specific guidance needed to answer the question about %s.", strings.Join(words, " ")),
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
