package knowledge

// BuiltIn returns the fixed built-in topic table. The slice is rebuilt on
// every call so callers can never mutate the canned data.
func BuiltIn() []Category {
	return []Category{
		{
			Name:     "admission",
			Keywords: []string{"admission", "requirements", "apply", "application", "enroll", "enrollment"},
			Responses: []string{
				"Here are the general admission requirements for our college:\n\n" +
					"• High school diploma or equivalent (GED)\n" +
					"• Completed application form with $50 application fee\n" +
					"• Official high school transcripts\n" +
					"• SAT or ACT scores (recommended)\n" +
					"• Personal statement or essay\n" +
					"• Letters of recommendation (2 required)\n" +
					"• Application deadline: March 1st for Fall semester\n\n" +
					"For specific programs, additional requirements may apply. Would you like me to provide details about a particular major or program?",
				"To apply to our college, you'll need an application form, the $50 non-refundable fee, " +
					"high school transcripts, and standardized test scores. A personal essay (500-750 words), " +
					"letters of recommendation, and a resume of activities are recommended.\n\n" +
					"The application process typically takes 4-6 weeks for review.",
			},
		},
		{
			Name:     "courses",
			Keywords: []string{"course", "class", "major", "program", "curriculum", "syllabus"},
			Responses: []string{
				"We offer a wide range of courses across various disciplines:\n\n" +
					"**Arts & Humanities:** English Literature, Creative Writing, History, Philosophy\n" +
					"**Business & Economics:** Business Administration, Marketing, Finance, Economics\n" +
					"**Science & Technology:** Computer Science, Biology, Chemistry, Physics, Mathematics, Engineering\n" +
					"**Social Sciences:** Psychology, Sociology, Political Science, Education\n" +
					"**Health Sciences:** Nursing, Public Health, Nutrition, Exercise Science\n\n" +
					"Each major has specific course requirements and electives. What field interests you most?",
				"Our academic programs include Bachelor of Arts (BA), Bachelor of Science (BS), and " +
					"Bachelor of Business Administration (BBA) degrees, plus MA, MS, and MBA graduate programs. " +
					"Special features include an Honors Program, study abroad opportunities, internships, and " +
					"research opportunities.",
			},
		},
		{
			Name:     "financial_aid",
			Keywords: []string{"financial", "aid", "scholarship", "cost", "tuition", "fee", "money", "payment"},
			Responses: []string{
				"We're committed to making education affordable! Here's information about financial aid:\n\n" +
					"**Tuition & Fees:** Full-time tuition is $12,500 per semester, room & board $8,000, " +
					"books & supplies around $1,200.\n\n" +
					"**Financial Aid Options:** Federal Pell Grants (up to $6,895/year), Federal Direct Loans, " +
					"work-study programs, institutional scholarships, and state grants.\n\n" +
					"Complete the FAFSA by the March 1st priority deadline, then review and accept your " +
					"financial aid package. Our financial aid office can help you explore all options. " +
					"Would you like me to connect you with them?",
				"Understanding college costs is important! Annual full-time costs run about $46,400: " +
					"$25,000 tuition, $16,000 room & board, $2,400 books & supplies, and $3,000 personal " +
					"expenses.\n\nWays to reduce costs: apply for scholarships early, buy used textbooks, " +
					"consider living off-campus, and apply for work-study positions.",
			},
		},
		{
			Name:     "library",
			Keywords: []string{"library", "hours", "study", "book", "resource", "research"},
			Responses: []string{
				"Our library is a great place to study! Here are the current hours:\n\n" +
					"**Main Library Hours:**\n" +
					"• Monday-Thursday: 7:00 AM - 11:00 PM\n" +
					"• Friday: 7:00 AM - 8:00 PM\n" +
					"• Saturday: 9:00 AM - 6:00 PM\n" +
					"• Sunday: 12:00 PM - 11:00 PM\n\n" +
					"Study rooms can be reserved for 2-hour blocks, the Rare Books Room is open by " +
					"appointment, and the library runs 24/7 during final exam week. Online resources are " +
					"accessible 24/7 from anywhere!",
				"The library provides comprehensive academic support: 500,000+ books and journals, 50+ " +
					"study rooms, computer workstations, and printing services (100 free pages/semester). " +
					"Online you'll find e-books, databases, research guides, citation tools, and 24/7 chat " +
					"support, plus research consultations and interlibrary loan.",
			},
		},
		{
			Name:     "campus_services",
			Keywords: []string{"campus", "service", "facility", "center", "office", "help"},
			Responses: []string{
				"We have comprehensive campus services to support your success:\n\n" +
					"**Academic Support:** Writing Center (Mon-Fri, 9 AM-5 PM, Library 2nd Floor) and " +
					"Math Lab (Mon-Thu, 10 AM-8 PM, Science Building Room 105) with drop-in tutoring.\n\n" +
					"**Health & Wellness:** Student Health Center, free confidential counseling with a " +
					"24/7 crisis hotline, and a fitness center open 6 AM-11 PM daily.\n\n" +
					"**Student Life:** Student Union, Career Services, International Student Office, and " +
					"Disability Services.\n\n" +
					"What specific service would you like more information about?",
				"Our campus is designed to meet all your needs: modern classrooms with smart technology, " +
					"collaborative study areas and quiet zones, an Olympic-size swimming pool, a health " +
					"clinic with pharmacy, 24/7 campus security, and an information desk for anything else.",
			},
		},
		{
			Name:     "student_life",
			Keywords: []string{"student life", "club", "activity", "event", "organization", "social"},
			Responses: []string{
				"Campus life is vibrant and engaging! We have 100+ active student organizations: academic " +
					"and professional clubs (Math Club, Science Society, Business Students Association, " +
					"Pre-Med Society, Engineering Club), cultural and international organizations, and " +
					"recreation programs from intramural sports to outdoor adventures.\n\n" +
					"Major traditions include Welcome Week in August, Homecoming in October, and the Spring " +
					"Festival in April. Getting involved is a great way to make friends and build your resume!",
				"There's never a dull moment on campus! Weekly activities include Movie Night (Monday), " +
					"Trivia Night (Tuesday), Wellness Wednesday, Live Music (Thursday), and Game Night " +
					"(Friday), plus leadership workshops, career networking events, varsity and club " +
					"sports, and community service projects.",
			},
		},
		{
			Name:     "technical_support",
			Keywords: []string{"technical", "computer", "software", "wifi", "internet", "technology", "it"},
			Responses: []string{
				"Need tech help? IT support is available 24/7:\n\n" +
					"• **Help Desk Hotline:** (555) 123-4567\n" +
					"• **Email:** helpdesk@college.edu\n" +
					"• **Walk-in:** Tech Support Building (Mon-Fri, 8 AM-8 PM)\n\n" +
					"For WiFi, join 'College_Network' with your student ID; coverage spans all academic " +
					"buildings, residence halls, and outdoor spaces. Free software includes Microsoft " +
					"Office 365, Adobe Creative Suite, SPSS, and MATLAB, downloadable from the student " +
					"portal.\n\n" +
					"What specific technical issue are you experiencing?",
				"Technology is essential for modern education. Students get free Microsoft Office 365, " +
					"Adobe Creative Suite, statistical analysis tools, and programming environments, plus " +
					"access to the learning management system, student portal, and library databases. " +
					"Support is available in person, by remote desktop, and through video tutorials.",
			},
		},
		{
			Name:     "academic_calendar",
			Keywords: []string{"calendar", "deadline", "exam", "break", "holiday", "schedule"},
			Responses: []string{
				"Here's the academic calendar for the 2024-2025 academic year:\n\n" +
					"**Fall Semester (August 26 - December 20):** classes begin August 26, Fall Break " +
					"October 14-15, Thanksgiving Break November 27-29, final examinations December 16-20.\n\n" +
					"**Spring Semester (January 13 - May 10):** classes begin January 13, Spring Break " +
					"March 10-14, final examinations May 5-9, Commencement May 10.\n\n" +
					"**Key deadlines:** FAFSA priority deadline March 1st, Fall housing application May " +
					"1st, graduation applications July 1st (Fall) and March 1st (Spring).\n\n" +
					"Need specific dates for your program or major requirements?",
				"Stay organized with our academic calendar: Fall registration runs April 1-30, Spring " +
					"registration November 1-30, and Summer registration March 1-31. Course withdrawal is " +
					"allowed through 75% of the semester, and grade change requests must be filed within " +
					"30 days of grades posting.",
			},
		},
		{
			Name:     "housing",
			Keywords: []string{"housing", "dorm", "residence", "room", "accommodation", "living", "apartment"},
			Responses: []string{
				"We offer excellent on-campus housing options:\n\n" +
					"• Traditional dorms: $4,500/semester\n" +
					"• Suite-style: $5,200/semester\n" +
					"• Apartment-style: $6,000/semester\n\n" +
					"All halls include high-speed WiFi, laundry facilities, study lounges, 24/7 security, " +
					"and meal plan options. Submit the housing application by May 1st with a $200 deposit; " +
					"room selection happens in June and move-in day is August 24th.\n\n" +
					"Would you like information about specific residence halls or off-campus options?",
				"Our Living Learning Communities pair housing with academics: Honors Hall, Global Village " +
					"for international students, STEM House, and the Arts Collective. Off-campus resources " +
					"include approved apartment complexes, homestay programs, commuter parking permits, and " +
					"a shuttle service to campus. Reach the housing office at (555) 123-4568 or " +
					"housing@college.edu.",
			},
		},
		{
			Name:     "parking",
			Keywords: []string{"parking", "car", "vehicle", "transportation", "commute", "shuttle", "bus"},
			Responses: []string{
				"Here's everything you need to know about parking and transportation:\n\n" +
					"**Student Permits:** annual $300, semester $180, daily $5.\n" +
					"**Lots:** North Campus (500 spaces), South Campus (300), East Campus (200), plus " +
					"visitor parking.\n" +
					"**Free Shuttle:** every 15 minutes, 7:00 AM - 11:00 PM daily, connecting all campus " +
					"areas with a real-time tracking app.\n\n" +
					"City bus routes are free with a student ID, and a bike share program and carpool " +
					"matching service are also available. Need help with a permit application or shuttle " +
					"routes?",
			},
		},
	}
}
