package catalog

// CoinPackages are the top-up bundles offered in the wallet.
var CoinPackages = []CoinPackage{
	{Amount: 100, Label: "100 Coins", Price: "$10"},
	{Amount: 300, Label: "300 Coins", Price: "$25"},
	{Amount: 500, Label: "500 Coins", Price: "$40"},
}

// Professionals is the seeded career-professional directory.
var Professionals = []Professional{
	{
		ID:             "1",
		Name:           "Dr. Sarah Johnson",
		Title:          "Career Counselor",
		Specialization: "Technology & Engineering",
		Bio:            "Helping tech professionals find their dream careers for over 10 years.",
		FullBio:        "Dr. Sarah Johnson has been guiding students and professionals in the technology sector for over a decade. With a PhD in Career Psychology and extensive industry experience at leading tech companies, she specializes in helping individuals navigate the rapidly evolving tech landscape. Sarah's approach combines data-driven insights with compassionate guidance to help her clients discover fulfilling career paths.",
		Experience:     "12 years",
		Qualifications: []string{
			"PhD in Career Psychology",
			"Certified Career Development Professional",
			"Former HR Director at TechGiant Inc.",
		},
		Rating:      4.9,
		ReviewCount: 127,
		AvailableDates: []AvailableDate{
			{
				Date: "2023-06-15",
				Slots: []TimeSlot{
					{Time: "09:00 AM", Available: true},
					{Time: "11:00 AM", Available: true},
					{Time: "02:00 PM", Available: false},
					{Time: "04:00 PM", Available: true},
				},
			},
			{
				Date: "2023-06-16",
				Slots: []TimeSlot{
					{Time: "10:00 AM", Available: true},
					{Time: "01:00 PM", Available: true},
					{Time: "03:00 PM", Available: true},
				},
			},
		},
		Contact: Contact{
			Email:    "sarah.johnson@cglines.com",
			Phone:    "+1 (555) 123-4567",
			LinkedIn: "linkedin.com/in/sarahjohnson",
			Twitter:  "twitter.com/drsarahjohnson",
		},
	},
	{
		ID:             "2",
		Name:           "Michael Chen",
		Title:          "Career Coach",
		Specialization: "Business & Finance",
		Bio:            "Former Wall Street executive helping students break into finance.",
		FullBio:        "Michael Chen brings 15 years of Wall Street experience to his career coaching practice. After a successful career in investment banking, he now dedicates his time to helping students and young professionals navigate the competitive world of finance and business. His insider knowledge of recruitment processes at top firms gives his clients a significant advantage in their job search.",
		Experience:     "15 years",
		Qualifications: []string{
			"MBA from Wharton",
			"Former VP at Goldman Sachs",
			"Certified Financial Planner",
		},
		Rating:      4.8,
		ReviewCount: 93,
		AvailableDates: []AvailableDate{
			{
				Date: "2023-06-15",
				Slots: []TimeSlot{
					{Time: "10:00 AM", Available: false},
					{Time: "01:00 PM", Available: true},
					{Time: "03:00 PM", Available: true},
				},
			},
			{
				Date: "2023-06-16",
				Slots: []TimeSlot{
					{Time: "09:00 AM", Available: true},
					{Time: "11:00 AM", Available: true},
					{Time: "02:00 PM", Available: true},
				},
			},
		},
		Contact: Contact{
			Email:    "michael.chen@cglines.com",
			Phone:    "+1 (555) 987-6543",
			LinkedIn: "linkedin.com/in/michaelchen",
		},
	},
	{
		ID:             "3",
		Name:           "Aisha Patel",
		Title:          "Career Strategist",
		Specialization: "Healthcare & Medicine",
		Bio:            "Guiding medical professionals through career transitions and advancement.",
		FullBio:        "Aisha Patel specializes in career development for healthcare professionals at all stages of their careers. With experience as a medical recruiter and healthcare administrator, she understands the unique challenges and opportunities in the medical field. Aisha has helped hundreds of doctors, nurses, and allied health professionals find meaningful roles and navigate complex career decisions.",
		Experience:     "9 years",
		Qualifications: []string{
			"Master's in Healthcare Management",
			"Certified Healthcare Recruiter",
			"Former Medical Center HR Director",
		},
		Rating:      4.7,
		ReviewCount: 86,
		AvailableDates: []AvailableDate{
			{
				Date: "2023-06-17",
				Slots: []TimeSlot{
					{Time: "09:00 AM", Available: true},
					{Time: "11:00 AM", Available: false},
					{Time: "02:00 PM", Available: true},
				},
			},
			{
				Date: "2023-06-18",
				Slots: []TimeSlot{
					{Time: "10:00 AM", Available: true},
					{Time: "01:00 PM", Available: true},
					{Time: "03:00 PM", Available: false},
				},
			},
		},
		Contact: Contact{
			Email:    "aisha.patel@cglines.com",
			Phone:    "+1 (555) 234-5678",
			LinkedIn: "linkedin.com/in/aishapatel",
			Twitter:  "twitter.com/aishapatel",
		},
	},
	{
		ID:             "4",
		Name:           "James Wilson",
		Title:          "Career Mentor",
		Specialization: "Creative Arts & Design",
		Bio:            "Emmy-winning creative director helping artists build sustainable careers.",
		FullBio:        "James Wilson has spent over two decades in the creative industry, earning recognition including an Emmy award for his directorial work. Now, he mentors emerging artists and designers, helping them develop both their creative voice and business acumen. James believes in sustainable creative careers and helps his clients find the balance between artistic fulfillment and financial stability.",
		Experience:     "20 years",
		Qualifications: []string{
			"BFA in Fine Arts",
			"Emmy Award Winner",
			"Former Creative Director at ArtistryStudio",
		},
		Rating:      4.9,
		ReviewCount: 115,
		AvailableDates: []AvailableDate{
			{
				Date: "2023-06-19",
				Slots: []TimeSlot{
					{Time: "11:00 AM", Available: true},
					{Time: "02:00 PM", Available: true},
					{Time: "04:00 PM", Available: true},
				},
			},
			{
				Date: "2023-06-20",
				Slots: []TimeSlot{
					{Time: "10:00 AM", Available: false},
					{Time: "01:00 PM", Available: true},
					{Time: "03:00 PM", Available: true},
				},
			},
		},
		Contact: Contact{
			Email:    "james.wilson@cglines.com",
			Phone:    "+1 (555) 345-6789",
			LinkedIn: "linkedin.com/in/jameswilson",
			Twitter:  "twitter.com/jameswilson",
		},
	},
}
