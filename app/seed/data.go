package main

import "github.com/sarathmw/portfolio-api/internal/models"

func strptr(s string) *string { return &s }

var seedPersonalInfo = models.PersonalInfo{
	Name:         "Sarath M Warrier",
	Role:         "IT Infrastructure & Support Engineer",
	SubRole:      "Cybersecurity & DevOps Enthusiast",
	Location:     "Shoranur, Kerala, India",
	Email:        "sarathmwarrier@gmail.com",
	Phone:        "+91-6363-092-902",
	LinkedIn:     "linkedin.com/in/sarathmwarrier",
	Avatar:       strptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face"),
	AboutSummary: "Experienced IT Infrastructure & Support Engineer with 7+ years of expertise in Microsoft technologies, endpoint management, and cybersecurity. Passionate about implementing robust IT solutions and continuously learning emerging technologies in DevOps and security domains.",
}

var seedSkills = []models.Skill{
	{
		Category: "Microsoft & Directory Services",
		Items:    []string{"Active Directory", "Azure AD", "Office 365", "Exchange Server", "SharePoint"},
		Order:    1,
	},
	{
		Category: "Endpoint & Device Management",
		Items:    []string{"Microsoft Intune", "SCCM", "Group Policy", "Windows Deployment", "Mobile Device Management"},
		Order:    2,
	},
	{
		Category: "Networking & Security",
		Items:    []string{"Firewall Configuration", "VPN Setup", "Network Monitoring", "Security Policies", "Vulnerability Assessment"},
		Order:    3,
	},
	{
		Category: "Backup & Recovery",
		Items:    []string{"Veeam Backup", "Azure Backup", "Disaster Recovery", "Data Protection", "Business Continuity"},
		Order:    4,
	},
	{
		Category: "RMM & Monitoring Tools",
		Items:    []string{"ConnectWise", "SolarWinds", "PRTG", "Nagios", "System Monitoring"},
		Order:    5,
	},
	{
		Category: "Ticketing & ITSM Tools",
		Items:    []string{"ServiceNow", "Jira Service Desk", "Freshservice", "ManageEngine", "Help Desk Systems"},
		Order:    6,
	},
}

var seedExperience = []models.Experience{
	{
		Title:     "IT & Assets Coordinator",
		Company:   "Headout Inc.",
		StartDate: "2025-01-01",
		Duration:  "2025 – Present",
		Logo:      strptr("https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=80&h=80&fit=crop"),
		Highlights: []string{
			"Managing global IT infrastructure and asset lifecycle",
			"Implementing security policies and compliance frameworks",
			"Coordinating with vendors and managing IT budgets",
			"Leading digital transformation initiatives",
		},
		Order: 1,
	},
	{
		Title:     "System Engineer",
		Company:   "Worksent Technologies Pvt Ltd",
		StartDate: "2024-01-01",
		EndDate:   strptr("2024-12-31"),
		Duration:  "2024 – 2025",
		Highlights: []string{
			"Designed and implemented enterprise network solutions",
			"Managed Windows Server environments and virtualization",
			"Automated deployment processes using PowerShell",
			"Provided L2/L3 technical support and troubleshooting",
		},
		Order: 2,
	},
	{
		Title:     "Senior System Analyst",
		Company:   "Corrohealth Infotech Pvt Ltd",
		StartDate: "2022-01-01",
		EndDate:   strptr("2023-12-31"),
		Duration:  "2022 – 2024",
		Highlights: []string{
			"Led system integration projects and infrastructure upgrades",
			"Implemented backup and disaster recovery solutions",
			"Managed Active Directory and Exchange environments",
			"Coordinated with cross-functional teams for project delivery",
		},
		Order: 3,
	},
	{
		Title:     "IT Support Engineer",
		Company:   "Way Dot Com India Pvt Ltd",
		StartDate: "2021-01-01",
		EndDate:   strptr("2021-12-31"),
		Duration:  "2021 – 2022",
		Highlights: []string{
			"Provided comprehensive technical support to end users",
			"Managed endpoint security and compliance",
			"Implemented ticketing system workflows",
			"Documented IT processes and procedures",
		},
		Order: 4,
	},
	{
		Title:     "Technical Associate",
		Company:   "Pacer Automation Pvt Ltd",
		StartDate: "2018-01-01",
		EndDate:   strptr("2020-12-31"),
		Duration:  "2018 – 2021",
		Highlights: []string{
			"Started career in IT support and system administration",
			"Gained expertise in Windows environments and networking",
			"Developed troubleshooting and problem-solving skills",
			"Built foundation in IT service management",
		},
		Order: 5,
	},
}

var seedEducation = []models.Education{
	{
		Degree:      "B.Tech in Electronics & Communication",
		Institution: "University Name",
		Year:        "2017",
		Description: "Graduated with strong foundation in electronics and communication engineering",
		Order:       1,
	},
	{
		Degree:      "Diploma in Network Engineering",
		Institution: "Institute Name",
		Year:        "2018",
		Description: "Specialized training in network infrastructure and management",
		Order:       2,
	},
}

var seedLanguages = []models.Language{
	{Name: "English", Level: 95, Order: 1},
	{Name: "Malayalam", Level: 100, Order: 2},
	{Name: "Hindi", Level: 80, Order: 3},
	{Name: "Tamil", Level: 70, Order: 4},
}
