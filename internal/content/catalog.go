package content

// Static site content. The marketing frontend renders these datasets;
// the API only does keyed lookups over them. Unknown keys resolve to a
// default record rather than an error.

// Service describes one agency service offering
type Service struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Deliverables []string `json:"deliverables"`
}

// FAQ is one frequently asked question
type FAQ struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Project is one portfolio entry
type Project struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	URL      string `json:"url,omitempty"`
}

var services = []Service{
	{
		Slug:        "web-development",
		Title:       "Web Development",
		Description: "Fast, accessible marketing sites and web apps built on modern frameworks.",
		Deliverables: []string{
			"Responsive frontend", "CMS integration", "Performance budget", "Analytics setup",
		},
	},
	{
		Slug:        "ui-ux-design",
		Title:       "UI/UX Design",
		Description: "Research-driven interface design from wireframe to polished handoff.",
		Deliverables: []string{
			"User flows", "Wireframes", "High-fidelity mockups", "Design system",
		},
	},
	{
		Slug:        "ecommerce",
		Title:       "E-commerce",
		Description: "Storefronts that convert, with payment, inventory and shipping wired in.",
		Deliverables: []string{
			"Store setup", "Payment integration", "Product catalog", "Order notifications",
		},
	},
	{
		Slug:        "seo-marketing",
		Title:       "SEO & Marketing",
		Description: "Technical SEO, content structure and campaign landing pages.",
		Deliverables: []string{
			"Site audit", "Keyword strategy", "Landing pages", "Reporting",
		},
	},
	{
		Slug:        "maintenance",
		Title:       "Maintenance & Support",
		Description: "Ongoing updates, monitoring and fixes for sites we build or inherit.",
		Deliverables: []string{
			"Uptime monitoring", "Dependency updates", "Content changes", "Priority support",
		},
	},
}

var faqs = []FAQ{
	{ID: 1, Question: "How long does a typical website project take?", Answer: "Most marketing sites ship in 4-8 weeks depending on scope; e-commerce builds usually take 8-12 weeks."},
	{ID: 2, Question: "Do you work with existing brands and design systems?", Answer: "Yes. We can extend an existing design system or build one from scratch as part of the engagement."},
	{ID: 3, Question: "What happens after launch?", Answer: "Every project includes 30 days of post-launch support; ongoing maintenance plans are available after that."},
	{ID: 4, Question: "Can you take over a site built by another agency?", Answer: "We start with a technical audit, then propose either incremental fixes or a rebuild depending on what we find."},
	{ID: 5, Question: "How do I get a quote?", Answer: "Use the contact form with a short description of your project and we will get back to you within one business day."},
}

var projects = []Project{
	{Slug: "harborline-logistics", Title: "Harborline Logistics", Category: "Corporate site", Summary: "Multilingual marketing site with a freight quote calculator."},
	{Slug: "bloom-and-branch", Title: "Bloom & Branch", Category: "E-commerce", Summary: "Plant shop storefront with subscription checkout and local delivery."},
	{Slug: "atlas-fitness", Title: "Atlas Fitness", Category: "Web app", Summary: "Class booking portal with member accounts and trainer dashboards."},
	{Slug: "northpeak-legal", Title: "Northpeak Legal", Category: "Corporate site", Summary: "Practice-area site with gated resource library and intake forms."},
}

// Services returns all service offerings
func Services() []Service {
	return services
}

// ServiceBySlug returns the service with the given slug. Unknown slugs
// fall back to the first (primary) offering so the site always has
// something to render.
func ServiceBySlug(slug string) Service {
	for _, s := range services {
		if s.Slug == slug {
			return s
		}
	}
	return services[0]
}

// FAQs returns all FAQ entries
func FAQs() []FAQ {
	return faqs
}

// Projects returns all portfolio entries
func Projects() []Project {
	return projects
}

// ProjectBySlug returns the project with the given slug, falling back
// to the first entry for unknown slugs.
func ProjectBySlug(slug string) Project {
	for _, p := range projects {
		if p.Slug == slug {
			return p
		}
	}
	return projects[0]
}
