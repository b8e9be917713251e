package service

import (
	"fmt"
	"strconv"

	"github.com/octobees/leadscout/internal/entity"
)

const leadBatchPromptTemplate = `
TASK: Find %[1]d distinct INDEPENDENT business leads for "%[2]s" at/near "%[3]s".

LOCATION HANDLING:
- Accurately process location strings like "%[3]s".
- If the location includes "near" or state names, prioritize local pins in those specific areas.

STRICT SMB QUALITY RULES:
1. INDEPENDENT ONLY: No global chains, no elite venues, no franchises.
2. PHYSICAL STOREFRONT: Must have a real street address and visible business presence.
3. ACTIVE: Must be currently open and active.
4. TRUST SIGNALS (ANY 2):
   - 10+ Reviews.
   - Owner-uploaded photos.
   - Recently updated hours.
   - Owner responses to reviews.
5. EXCEPTION: Allow 0-9 review businesses IF they have a website (early bird targets).

DATA ENRICHMENT (MANDATORY):
- Use 'googleSearch' to find valid Instagram and LinkedIn URLs for these businesses.
- Check for official profiles matching the business name and city.
- Flag "mobile_speed_issue" when the website is visibly slow or broken on mobile and
  grade it in "mobile_speed_confidence" as Low, Medium or High.

TOOLS: Use 'googleMaps' for location pins and 'googleSearch' for chain/site/social verification.
OUTPUT: Return ONLY a raw JSON array.
SCHEMA: [{ "name": "...", "phone": "...", "website": "...", "rating": 4.1, "reviewCount": 120, "address": "...", "email": "...", "instagram": "...", "linkedin": "...", "mobile_speed_issue": true, "mobile_speed_confidence": "Medium" }]
`

const auditPromptTemplate = `Conduct a technical audit for "%s". Website: %s. Return JSON AuditReport.
SCHEMA: { "overallScore": 0-100, "summary": "...", "categories": [{ "name": "...", "score": 0-10, "status": "Good|Fair|Poor" }], "keyFindings": [{ "type": "issue|good", "text": "..." }], "roadmap": [{ "phase": "...", "title": "...", "items": ["..."] }], "technicalDetails": [{ "title": "...", "value": "...", "status": "pass|fail|warning" }] }
Return ONLY the JSON object.`

func leadBatchPrompt(batchSize int, niche, location string) string {
	return fmt.Sprintf(leadBatchPromptTemplate, batchSize, niche, location)
}

func batchPitchPrompt(name, label string) string {
	return fmt.Sprintf(`Write a personalized cold email for "%s". Service: %s. Format JSON: { "subject": "...", "body": "..." }`, name, label)
}

func adHocPitchPrompt(serviceName string, lead entity.Lead) string {
	rating := strconv.FormatFloat(lead.Rating, 'f', -1, 64)
	return fmt.Sprintf("Pitch %s to %s in %s. Focus on their %s rating.", serviceName, lead.Name, lead.Address, rating)
}

func auditPrompt(lead entity.Lead) string {
	website := lead.Website
	if website == "" {
		website = "N/A"
	}
	return fmt.Sprintf(auditPromptTemplate, lead.Name, website)
}
