package database

import (
	"github.com/rpupo63/chameleon-site/models"
	"gorm.io/datatypes"
)

func ptr(s string) *string {
	return &s
}

func vibePreset(name string, position int, cfg models.Config) models.VibeConfig {
	return models.VibeConfig{Name: name, SliderPosition: position, Config: datatypes.NewJSONType(cfg)}
}

// DefaultSeedData returns the studio's portfolio content and the five vibe
// presets at positions 0, 25, 50, 75 and 100.
func DefaultSeedData() SeedData {
	return SeedData{
		Vibes: []models.VibeConfig{
			vibePreset("Corporate Professional", 0, models.Config{
				Typography: &models.Typography{
					FontFamily: `"Inter", system-ui, -apple-system, sans-serif`,
					FontSizes:  &models.FontSizes{H1: "2.5rem", H2: "2rem", H3: "1.5rem", Body: "1rem", Small: "0.875rem"},
				},
				Colors:       &models.Colors{Primary: "#1e40af", Secondary: "#3b82f6", Background: "#ffffff", Text: "#1f2937", Accent: "#2563eb"},
				Spacing:      &models.Spacing{XS: "0.5rem", SM: "1rem", MD: "1.5rem", LG: "2rem", XL: "3rem"},
				BorderRadius: "0.25rem",
				GridColumns:  3,
			}),
			vibePreset("Clean Modern", 25, models.Config{
				Typography: &models.Typography{
					FontFamily: `"SF Pro Display", system-ui, sans-serif`,
					FontSizes:  &models.FontSizes{H1: "3rem", H2: "2.25rem", H3: "1.75rem", Body: "1rem", Small: "0.875rem"},
				},
				Colors:       &models.Colors{Primary: "#0891b2", Secondary: "#06b6d4", Background: "#f8fafc", Text: "#334155", Accent: "#14b8a6"},
				Spacing:      &models.Spacing{XS: "0.5rem", SM: "1rem", MD: "2rem", LG: "2.5rem", XL: "4rem"},
				BorderRadius: "0.5rem",
				GridColumns:  3,
			}),
			vibePreset("Balanced Creative", 50, models.Config{
				Typography: &models.Typography{
					FontFamily: `"Space Grotesk", system-ui, sans-serif`,
					FontSizes:  &models.FontSizes{H1: "3.5rem", H2: "2.5rem", H3: "2rem", Body: "1.125rem", Small: "1rem"},
				},
				Colors:       &models.Colors{Primary: "#7c3aed", Secondary: "#a855f7", Background: "#faf5ff", Text: "#581c87", Accent: "#c026d3"},
				Spacing:      &models.Spacing{XS: "0.75rem", SM: "1.25rem", MD: "2rem", LG: "3rem", XL: "4.5rem"},
				BorderRadius: "0.75rem",
				GridColumns:  3,
			}),
			vibePreset("Bold Expressive", 75, models.Config{
				Typography: &models.Typography{
					FontFamily: `"Syne", system-ui, sans-serif`,
					FontSizes:  &models.FontSizes{H1: "4rem", H2: "3rem", H3: "2.25rem", Body: "1.125rem", Small: "1rem"},
				},
				Colors:       &models.Colors{Primary: "#be123c", Secondary: "#f43f5e", Background: "#1a1a1a", Text: "#f5f5f5", Accent: "#fb7185"},
				Spacing:      &models.Spacing{XS: "1rem", SM: "1.5rem", MD: "2.5rem", LG: "3.5rem", XL: "5rem"},
				BorderRadius: "1rem",
				GridColumns:  2,
			}),
			vibePreset("Wild Experimental", 100, models.Config{
				Typography: &models.Typography{
					FontFamily: `"Clash Display", system-ui, sans-serif`,
					FontSizes:  &models.FontSizes{H1: "5rem", H2: "4rem", H3: "3rem", Body: "1.25rem", Small: "1rem"},
				},
				Colors:       &models.Colors{Primary: "#00ff9f", Secondary: "#ff00ff", Background: "#0a0a0a", Text: "#ffffff", Accent: "#ffff00"},
				Spacing:      &models.Spacing{XS: "1rem", SM: "2rem", MD: "3rem", LG: "4rem", XL: "6rem"},
				BorderRadius: "2rem",
				GridColumns:  1,
			}),
		},
		Projects: []models.Project{
			{
				Title:        "Cyber Brutalist to Art Deco",
				Description:  "A dynamic visual journey from raw, utilitarian cyber brutalism to refined Art Deco elegance through scroll-based transformations.",
				ThumbnailURL: ptr("/api/assets/cyberbrutalist-thumb.png"),
				Images:       []string{"/api/assets/cyberbrutalist-1.png", "/api/assets/cyberbrutalist-2.png"},
				Tags:         []string{"React", "Vite", "Tailwind", "GSAP", "Animation"},
				Content:      ptr("This project explores the spectrum of digital aesthetics. As users scroll, the interface transforms from chaotic brutalist layouts with exposed grids and glitch effects into sophisticated Art Deco patterns with golden geometries and ornate details. Features include micro-animations, interactive shop section, and generative art gallery."),
				Featured:     true,
				GithubURL:    ptr("https://github.com/salvadalba/nodaysidle-cyberbrutalist-to-art-deco"),
			},
			{
				Title:        "AeroGlass",
				Description:  "A premium generative art showcase featuring algorithmic masterpieces displayed in a stunning glassmorphism gallery.",
				ThumbnailURL: ptr("/api/assets/aeroglass-thumb.png"),
				Images:       []string{"/api/assets/aeroglass-1.png", "/api/assets/aeroglass-2.png"},
				Tags:         []string{"React", "Canvas API", "Generative Art", "Glassmorphism"},
				Content:      ptr("AeroGlass transforms mathematical algorithms into visual art. Each piece is generated on-the-fly using custom canvas algorithms, ensuring every viewing is unique. The gallery features premium glassmorphism design, 3D tilt effects on hover, and the ability to regenerate art with new seeds."),
				Featured:     true,
				GithubURL:    ptr("https://github.com/salvadalba/nodaysidle-Aeroglass-"),
			},
			{
				Title:        "Origin Zero",
				Description:  "AI-powered documentation generator that transforms two sentences into complete project specifications.",
				ThumbnailURL: ptr("/api/assets/originzero-thumb.png"),
				Images:       []string{"/api/assets/originzero-1.png", "/api/assets/originzero-2.png"},
				Tags:         []string{"React", "TypeScript", "AI", "Cinematic UI"},
				Content:      ptr(`Origin Zero is not just a tool, it's an experience. Built with a "Cinematic Zen" interface featuring deep dark modes, holographic accents, and fluid micro-animations. The platform visualizes the journey from chaos (ideation) to order (specification) through interactive visual storytelling.`),
				Featured:     true,
				GithubURL:    ptr("https://github.com/salvadalba/nodaysidle-originzero"),
				LiveURL:      ptr("https://0riginzero-8tngzswx9-nodaysidle.vercel.app/"),
			},
			{
				Title:        "Ironclad OS",
				Description:  "A WebAssembly-powered documentation compiler with an industrial minimal design aesthetic.",
				ThumbnailURL: ptr("/api/assets/ironclados-thumb.png"),
				Images:       []string{"/api/assets/ironclados-1.png", "/api/assets/ironclados-2.png"},
				Tags:         []string{"Rust", "WebAssembly", "React", "TypeScript"},
				Content:      ptr("Ironclad OS brings deterministic, zero-latency document generation to the browser using Rust and WebAssembly. The industrial minimal interface is designed for engineers who value precision. Generates PRDs, ARDs, Task Lists, and AI agent rules with 100% reproducibility."),
				GithubURL:    ptr("https://github.com/salvadalba/nodaysidle-ironclados"),
			},
			{
				Title:        "Mnemosync",
				Description:  "An AI-guided platform for preserving family memories through intelligent interviews and beautiful visualizations.",
				ThumbnailURL: ptr("/api/assets/mnemosync-thumb.png"),
				Images:       []string{"/api/assets/mnemosync-1.png", "/api/assets/mnemosync-2.png"},
				Tags:         []string{"GPT-4", "Whisper", "DALL-E", "React", "Memory"},
				Content:      ptr("Mnemosync uses AI to conduct dynamic interviews, generating context-aware follow-up questions that keep conversations flowing naturally. Features include secure audio recording with Whisper transcription, a beautiful timeline view, geographic memory maps, and AI-generated sketches for memories that lack photos."),
				GithubURL:    ptr("https://github.com/salvadalba/nodaysidle-Mnemosync"),
			},
			{
				Title:        "GridHive",
				Description:  "A peer-to-peer energy trading platform connecting solar prosumers through automated micro-auctions.",
				ThumbnailURL: ptr("/api/assets/gridhive-thumb.png"),
				Images:       []string{"/api/assets/gridhive-1.png", "/api/assets/gridhive-2.png"},
				Tags:         []string{"Rust", "PostgreSQL", "WebSocket", "React", "Energy"},
				Content:      ptr("GridHive enables homeowners with solar panels to sell excess energy directly to neighbors through 15-minute micro-auction cycles. Features real-time bidding, weather-based dynamic pricing, live dashboards, and complete transaction history. Built for a sustainable energy future."),
				GithubURL:    ptr("https://github.com/salvadalba/nodaysidle-gridhive"),
			},
		},
		CaseStudies: []SeedCaseStudy{
			{
				ProjectTitle: "Cyber Brutalist to Art Deco",
				CaseStudy: models.CaseStudy{
					Title:       "Designing Aesthetic Transformation",
					Description: "How we created a portfolio that morphs between two opposing design philosophies",
					Challenge:   "Traditional portfolios are static. We wanted to demonstrate design range dynamically, showing both raw experimental work and refined professional aesthetics in a single experience.",
					Solution:    "Implemented scroll-based CSS transitions with GSAP, creating seamless morphing between brutalist and Art Deco design tokens. Every element (typography, colors, borders, spacing) transforms as the user scrolls.",
					Results:     "A unique portfolio experience that demonstrates design versatility without requiring separate pages or portfolios. Average session time increased 3x compared to static designs.",
					OrderIndex:  1,
				},
			},
			{
				ProjectTitle: "Origin Zero",
				CaseStudy: models.CaseStudy{
					Title:       "From Chaos to Order: The Cinematic Zen Philosophy",
					Description: "Building an AI tool that feels like an experience, not just utility",
					Challenge:   "AI tools often feel cold and utilitarian. We wanted Origin Zero to feel premium and immersive, transforming the mundane task of documentation into something cinematic.",
					Solution:    `Developed a "Cinematic Zen" design system with holographic effects, noise-free interfaces, and micro-animations that visualize the transition from chaos (raw ideas) to order (structured specs).`,
					Results:     `Users describe the experience as "magical" and "premium." The visual storytelling approach makes complex AI outputs feel approachable and exciting.`,
					OrderIndex:  2,
				},
			},
			{
				ProjectTitle: "GridHive",
				CaseStudy: models.CaseStudy{
					Title:       "Real-Time Energy Trading at Scale",
					Description: "Building a marketplace that handles thousands of concurrent micro-transactions",
					Challenge:   "Energy trading requires sub-second latency for fair auctions. Traditional web architectures couldn't handle the real-time requirements of matching buyers and sellers every 15 minutes.",
					Solution:    "Built the core matching engine in Rust for performance, with WebSocket connections for instant updates. Implemented weather-based dynamic pricing using external APIs.",
					Results:     "Achieved <50ms auction resolution times. The platform can handle 10,000+ concurrent users with real-time bid updates.",
					OrderIndex:  3,
				},
			},
		},
		About: models.About{
			Name: "NODAYSIDLE",
			Bio:  "We are 2 people, 1 entity. NODAYSIDLE is a creative technology studio specializing in AI-powered applications, generative art, and innovative user interfaces. We believe in building tools that are as beautiful as they are functional, where every pixel serves a purpose and every interaction tells a story.",
			Skills: []string{
				"AI/ML Integration",
				"React & TypeScript",
				"Rust & WebAssembly",
				"Generative Art",
				"Design Systems",
				"Real-Time Systems",
				"Full-Stack Development",
				"UI/UX Design",
			},
			Experience: []models.Experience{
				{
					Title:       "Origin Zero",
					Company:     "AI Documentation Platform",
					Period:      "2024 - Present",
					Description: "Building the future of project documentation with AI that transforms ideas into structured specifications.",
				},
				{
					Title:       "Creative Technology Projects",
					Company:     "NODAYSIDLE",
					Period:      "2023 - Present",
					Description: "Developing innovative products at the intersection of art, AI, and engineering.",
				},
				{
					Title:       "Open Source Contributions",
					Company:     "Community",
					Period:      "Ongoing",
					Description: "Contributing to the ecosystem with tools and libraries that push the boundaries of web technology.",
				},
			},
			SocialLinks: &models.SocialLinks{
				Email:   ptr("info@nodaysidle.com"),
				Github:  ptr("https://github.com/salvadalba"),
				Twitter: ptr("https://twitter.com/kaly_ndi"),
			},
		},
	}
}
