package service

import (
	"strings"

	"github.com/Laisky/errors/v2"

	"github.com/chandemahtab/blog-api/internal/web/assist/dto"
)

const (
	maxTagLen = 30
	maxTags   = 8
)

// parseSummary splits a model reply into the summary prose and the
// bulleted key points.
func parseSummary(reply string) (*dto.SummaryResult, error) {
	var summaryLines, keyPoints []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			if point := strings.TrimSpace(line[2:]); point != "" {
				keyPoints = append(keyPoints, point)
			}
			continue
		}

		if len(keyPoints) == 0 {
			summaryLines = append(summaryLines, line)
		}
	}

	summary := strings.Join(summaryLines, " ")
	if summary == "" {
		return nil, errors.New("could not parse summary from reply")
	}

	return &dto.SummaryResult{
		Summary:   summary,
		KeyPoints: keyPoints,
	}, nil
}

// parseTags extracts a bounded list of short tags from a
// comma-separated model reply.
func parseTags(reply string) []string {
	// keep only the first line, models sometimes add commentary after
	if idx := strings.IndexByte(reply, '\n'); idx >= 0 {
		reply = reply[:idx]
	}

	var tags []string
	for _, raw := range strings.Split(reply, ",") {
		tag := strings.ToLower(strings.TrimSpace(raw))
		tag = strings.Trim(tag, "\"'#.")
		if tag == "" || len(tag) >= maxTagLen {
			continue
		}

		tags = append(tags, tag)
		if len(tags) == maxTags {
			break
		}
	}

	return tags
}

// parseModeration reads the verdict from the first line of a model
// reply. Anything unrecognized is treated as REVIEW.
func parseModeration(reply string) *dto.ModerationResult {
	lines := strings.SplitN(strings.TrimSpace(reply), "\n", 2)
	action := strings.ToUpper(strings.Trim(strings.TrimSpace(lines[0]), ".!"))

	reason := ""
	if len(lines) > 1 {
		reason = strings.TrimSpace(lines[1])
	}

	switch action {
	case dto.ActionApprove, dto.ActionReject, dto.ActionReview:
	default:
		action = dto.ActionReview
		if reason == "" {
			reason = "unrecognized verdict"
		}
	}

	return &dto.ModerationResult{Action: action, Reason: reason}
}
