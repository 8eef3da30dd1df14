package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/maheshrc27/dronepost/internal/models"
	"github.com/maheshrc27/dronepost/internal/transfer"
)

// mockContentGenerator produces canned drone content so the pipeline can run
// without a Google AI key.
type mockContentGenerator struct {
	ideas     []string
	openings  []string
	movements []string
	stories   []string
	closings  []string
	music     []string
	hashtags  []string
}

func NewMockContentGenerator() ContentGenerator {
	return &mockContentGenerator{
		ideas: []string{
			"Epic mountain sunrise drone reveal with cinematic transitions",
			"Urban city drone tour at golden hour with music sync",
			"Beach wave tracking drone shot from above",
			"Forest canopy fly-through with autumn colors",
			"Desert sand dunes drone photography at sunset",
			"Waterfall drone capture from multiple angles",
			"Harbor and marina drone shots during sunrise",
			"Snow-covered mountain peak drone exploration",
			"Agricultural field patterns from bird's eye view",
			"Construction site time-lapse drone progression",
			"Island hopping coastal drone adventure",
			"Northern lights drone chase in arctic conditions",
			"City skyline drone shot during blue hour",
			"River following drone journey from source to mouth",
			"Wildlife herd tracking from safe aerial distance",
		},
		openings:  []string{"Start with wide establishing shot", "Begin with close-up detail", "Open with dynamic movement"},
		movements: []string{"Smooth glide forward", "Orbital circle around subject", "Vertical ascent reveal", "Horizontal tracking shot"},
		stories:   []string{"Show scale and perspective", "Create sense of wonder", "Reveal hidden beauty", "Capture emotion of place"},
		closings:  []string{"Pull back to wide shot", "Fade to black with logo", "End with dramatic pause"},
		music:     []string{"Ambient electronic", "Cinematic orchestral", "Upbeat pop remix", "Nature sounds with gentle beat"},
		hashtags:  []string{"#drone", "#cinematic", "#photography", "#nature", "#travel"},
	}
}

func (g *mockContentGenerator) GenerateContentIdeas(_ context.Context, theme string, count int) ([]string, error) {
	if count > len(g.ideas) {
		count = len(g.ideas)
	}

	selected := make([]string, 0, count)
	for _, i := range rand.Perm(len(g.ideas))[:count] {
		idea := g.ideas[i]
		if strings.Contains(strings.ToLower(theme), "viral") {
			idea = "VIRAL: " + idea
		}
		selected = append(selected, idea)
	}
	return selected, nil
}

func (g *mockContentGenerator) GenerateVideoScript(_ context.Context, idea, duration string) (*models.Script, error) {
	movements := make([]string, 3)
	for i := range movements {
		movements[i] = g.movements[rand.Intn(len(g.movements))]
	}

	tags := make([]string, 0, 4)
	for _, i := range rand.Perm(len(g.hashtags))[:4] {
		tags = append(tags, g.hashtags[i])
	}

	return &models.Script{
		Opening:   g.openings[rand.Intn(len(g.openings))],
		Movements: movements,
		Story:     g.stories[rand.Intn(len(g.stories))],
		Closing:   g.closings[rand.Intn(len(g.closings))],
		Music:     g.music[rand.Intn(len(g.music))],
		Hashtags:  tags,
	}, nil
}

func (g *mockContentGenerator) GenerateCaption(_ context.Context, idea, platform string) (string, error) {
	snippet := idea
	if len(snippet) > 30 {
		snippet = snippet[:30]
	}

	captions := []string{
		fmt.Sprintf("Incredible drone shot! %s... #drone #cinematic", snippet),
		"This view is just breathtaking! #dronephotography #nature",
		"Cinematic drone magic #dji #mavic #drone",
		"From above everything looks different #aerial #photography",
		"Drone life is the best life! #dronelife #adventure",
	}

	caption := captions[rand.Intn(len(captions))]

	// TikTok captions stay short.
	if platform == "tiktok" && len(caption) > 150 {
		caption = caption[:147] + "..."
	}
	return caption, nil
}

func (g *mockContentGenerator) GenerateDroneTips(_ context.Context, skillLevel string) ([]string, error) {
	beginner := []string{
		"Always check weather conditions before flying",
		"Start with basic maneuvers in an open area",
		"Learn to use gimbal controls for smooth footage",
		"Practice emergency landing procedures",
		"Keep your drone within line of sight initially",
	}
	advanced := []string{
		"Master complex flight paths for cinematic shots",
		"Use ND filters for better exposure control",
		"Learn manual camera settings for professional look",
		"Practice precision flying through tight spaces",
		"Understand airspace regulations and restrictions",
	}

	tips := beginner
	if skillLevel != "beginner" {
		tips = advanced
	}

	selected := make([]string, 0, 3)
	for _, i := range rand.Perm(len(tips))[:3] {
		selected = append(selected, tips[i])
	}
	return selected, nil
}

func (g *mockContentGenerator) AnalyzeTrends(_ context.Context) (*transfer.TrendAnalysis, error) {
	return &transfer.TrendAnalysis{
		Analysis: `CURRENT DRONE CONTENT TRENDS:

Popular Shot Types:
- Top-down reveal shots
- Low-angle ascending shots
- Tracking shots of moving subjects
- Golden hour cinematography

Trending Locations:
- Desert landscapes at sunrise
- Urban cityscapes at blue hour
- Coastal wave formations
- Mountain peak reveals

Editing Styles:
- Smooth color grading
- Slow motion emphasis
- Cinematic sound design
- Quick cut transitions

Best Posting Times:
- Early morning: 6-8 AM
- Evening: 7-9 PM
- Weekends have higher engagement`,
		Hashtags: []string{"#drone", "#cinematic", "#viral", "#photography", "#trending"},
	}, nil
}
