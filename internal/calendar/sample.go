package calendar

// SampleDocument returns the built-in demonstration calendar used by the
// sample display mode. It never touches the agent.
func SampleDocument() Document {
	return Document{
		Summary: Summary{
			Month:                    "March",
			Year:                     2026,
			TotalPosts:               20,
			PromotionalPosts:         8,
			ConversionPosts:          6,
			AwarenessConversionRatio: "60:40",
			FormatDistribution:       FormatDistribution{Image: 6, Carousel: 5, Reel: 6, Story: 3},
			OfferSupportPercentage:   40,
		},
		Weeks: []Week{
			{
				WeekNumber: 1,
				DateRange:  "March 1 - March 7",
				Posts: []Post{
					{
						Day:           "Monday",
						Date:          "March 1",
						Pillar:        "Wellness & Spa Experience",
						ObjectiveTag:  "Awareness",
						Format:        "Carousel",
						SuggestedTime: "10:00 AM",
						Caption: "Start your week the right way -- immersed in the healing warmth of Therma Village mineral pools. " +
							"Our thermal waters are naturally heated to 38 degrees C, rich in minerals that soothe muscles and rejuvenate your skin.\n\n" +
							"Swipe to explore our **top 5 spa rituals** that locals swear by.",
						CTAType:        "DM Inquiry",
						VisualConcept:  "Carousel of 5 slides showing each spa ritual with soft warm lighting, steam effects, and close-up shots of mineral water pools.",
						Hashtags:       []string{"#ThermaVillage", "#SpaDay", "#WellnessRetreat", "#MineralPools", "#Relaxation"},
						SuggestedAdUse: "Boost",
						RemarketingTag: "spa_interest",
					},
					{
						Day:           "Wednesday",
						Date:          "March 3",
						Pillar:        "Sport & Activity",
						ObjectiveTag:  "Engagement",
						Format:        "Reel",
						SuggestedTime: "6:00 PM",
						Caption: "Who says wellness has to be slow? Our adventure trails and outdoor fitness zones will get your heart pumping " +
							"while surrounded by breathtaking mountain views.\n\nTag a friend who needs this kind of workout motivation!",
						CTAType:        "Comment Trigger",
						VisualConcept:  "Dynamic reel showing quick cuts of hiking trails, outdoor yoga, mountain biking, and fitness zone activities with upbeat music.",
						Hashtags:       []string{"#ActiveWellness", "#MountainFitness", "#OutdoorAdventure", "#ThermaVillage", "#FitnessGoals"},
						SuggestedAdUse: "Organic",
						RemarketingTag: "activity_engaged",
					},
					{
						Day:           "Friday",
						Date:          "March 5",
						Pillar:        "Special Offers & Promotions",
						ObjectiveTag:  "Conversion",
						Format:        "Image",
						SuggestedTime: "12:00 PM",
						Caption: "**SPRING ESCAPE DEAL:** Book your 3-night wellness package before March 15 and receive a complimentary " +
							"couples massage + thermal pool access.\n\nLimited availability -- only 12 packages remaining.\n\n" +
							"Book now at the link in bio or DM us for details.",
						CTAType:        "Direct Booking",
						VisualConcept:  "Elegant promotional image with spring flowers framing the spa entrance, overlay text showing the offer details with a warm golden color palette.",
						Hashtags:       []string{"#SpringDeal", "#WellnessPackage", "#BookNow", "#ThermaVillage", "#LimitedOffer"},
						SuggestedAdUse: "Full Paid",
						RemarketingTag: "promo_spring_escape",
					},
				},
			},
			{
				WeekNumber: 2,
				DateRange:  "March 8 - March 14",
				Posts: []Post{
					{
						Day:           "Monday",
						Date:          "March 8",
						Pillar:        "Guest Stories & Social Proof",
						ObjectiveTag:  "Retention",
						Format:        "Carousel",
						SuggestedTime: "9:00 AM",
						Caption: "\"We came for the spa, we stayed for the magic.\" -- Elena & Dimitar, returning guests since 2023.\n\n" +
							"Swipe to read 4 stories from guests who turned their first visit into an annual tradition.",
						CTAType:        "DM Inquiry",
						VisualConcept:  "Carousel featuring guest photos with quote overlays, warm filter, each slide showing a different couple with their testimonial.",
						Hashtags:       []string{"#GuestStories", "#ThermaVillage", "#SpaReview", "#WellnessJourney", "#HappyGuests"},
						SuggestedAdUse: "Boost",
						RemarketingTag: "social_proof_viewer",
					},
					{
						Day:           "Friday",
						Date:          "March 12",
						Pillar:        "Wellness & Spa Experience",
						ObjectiveTag:  "Conversion",
						Format:        "Story",
						SuggestedTime: "5:00 PM",
						Caption: "FLASH FRIDAY: 20% off all spa treatments booked this weekend. Tap the link to secure your spot. " +
							"Offer expires Sunday midnight.",
						CTAType:        "Direct Booking",
						VisualConcept:  "Vertical story format with countdown timer sticker, spa treatment montage background, bold text overlay with offer details.",
						Hashtags:       []string{"#FlashFriday", "#SpaDeal", "#WeekendWellness", "#ThermaVillage"},
						SuggestedAdUse: "Full Paid",
						RemarketingTag: "flash_sale_clicker",
					},
				},
			},
		},
	}
}
