package catalog

// The five campaign levels. Option labels are load-bearing: the engine's
// effect table matches them exactly, and the [Light]/[Heavy] markers drive
// the risk-friction step. Levels may carry more than QuestionsPerLevel
// questions; PlayOrder truncates.
var gameLevels = []Level{
	{
		Number:   1,
		Name:     "Level 1: Getting Started",
		AgeRange: [2]int{20, 25},
		Questions: []Question{
			{
				ID:    "l1q1",
				Title: "First Savings Decision",
				Story: "you've saved some money! What should you do with it?",
				Choices: []Choice{
					{ID: "savings_choice", Prompt: "What should you do with your savings?", Options: []string{
						"Keep it in your bank account",
						"Invest it in the stock market",
						"Spend it on fun things",
					}},
				},
				BaseReturn: 5,
			},
			{
				ID:    "l1q2",
				Title: "Your First Job Offer",
				Story: "you got a job offer! The company offers a retirement plan with free matching money.",
				Choices: []Choice{
					{ID: "401k_yes", Prompt: "Should you take the free matching money?", Options: []string{
						"Yes, take the free money!",
						"No, skip it",
					}},
					{ID: "starting_amount", Prompt: "What should you do with your starting money?", Options: []string{
						"Keep it as cash",
						"Invest in stocks",
						"Buy something expensive",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l1q3",
				Title: "Monthly Budget",
				Story: "you need to create a monthly budget. How much should you save?",
				Choices: []Choice{
					{ID: "savings_rate", Prompt: "How much of your income should you save?", Options: []string{
						"10% (minimum)",
						"20% (good goal)",
						"30%+ (aggressive)",
					}},
				},
				BaseReturn: 6,
			},
			{
				ID:    "l1q4",
				Title: "Small Emergency",
				Story: "you had a small emergency that costs $500. How do you pay?",
				Choices: []Choice{
					{ID: "small_emergency", Prompt: "How do you handle this?", Options: []string{
						"Use your savings",
						"Use a credit card",
						"Ask family for help",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l1q5",
				Title: "Learning About Investing",
				Story: "you're learning about investing. Should you start with stocks or wait?",
				Choices: []Choice{
					{ID: "learning_invest", Prompt: "What should you do?", Options: []string{
						"Start investing small amounts now",
						"Wait until you know more",
						"Invest everything you have",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l1q6",
				Title: "Friends Want to Go Out",
				Story: "your friends want to go on an expensive trip. Do you join them?",
				Choices: []Choice{
					{ID: "social_spending", Prompt: "What do you do?", Options: []string{
						"Save money and skip it",
						"Go but spend wisely",
						"Spend everything on fun",
					}},
				},
				BaseReturn: 5,
			},
			{
				ID:    "l1q7",
				Title: "First Investment Decision",
				Story: "you've saved $2,000. Should you invest it or keep it safe?",
				Choices: []Choice{
					{ID: "first_invest", Prompt: "Investment decision?", Options: []string{
						"Invest in a stock market fund",
						"Keep it in savings account",
						"Buy individual stocks",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l1q8",
				Title: "Bank Account Choice",
				Story: "your bank offers 0.5% interest. A high-yield account offers 4%.",
				Choices: []Choice{
					{ID: "bank_choice", Prompt: "Where to keep cash reserve?", Options: []string{
						"Stay with 0.5%",
						"Move to 4% high-yield",
						"Hold as physical cash",
					}},
				},
				BaseReturn: 5,
			},
			{
				ID:    "l1q9",
				Title: "Broker Basics",
				Story: "your broker offers zero-commission ETFs and fractional shares.",
				Choices: []Choice{
					{ID: "etf_start", Prompt: "Starter portfolio?", Options: []string{
						"Single stock bet",
						"Broad-market ETF",
						"All cash for now",
					}},
				},
				BaseReturn: 6,
			},
			{
				ID:    "l1q10",
				Title: "Emergency Target",
				Story: "you have 1 month saved. Target is 3-6 months.",
				Choices: []Choice{
					{ID: "efund_step", Prompt: "Next step?", Options: []string{
						"Automate $200/mo",
						"Invest first, save later",
						"Rely on credit",
					}},
				},
				BaseReturn: 5,
			},
		},
	},
	{
		Number:   2,
		Name:     "Level 2: Building Foundations",
		AgeRange: [2]int{25, 30},
		Questions: []Question{
			{
				ID:    "l2q1",
				Title: "Major Emergency",
				Story: "your car broke down! It costs $3,000 to fix.",
				Choices: []Choice{
					{ID: "emergency_fund", Prompt: "How do you pay for it?", Options: []string{
						"Use your savings (smart!) [Light]",
						"0% promo card then pay off [Light]",
						"Use a credit card (expensive!) [Heavy]",
						"Personal loan at 18% APR [Heavy]",
						"Ignore the bill for now [Heavy]",
					}},
					{ID: "after_emergency", Prompt: "After this, what should you do?", Options: []string{
						"Rebuild emergency fund",
						"Forget about it",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l2q2",
				Title: "Pay Raise!",
				Story: "you got a raise! Your income increased.",
				Choices: []Choice{
					{ID: "raise_choice", Prompt: "What should you do with extra money?", Options: []string{
						"Save half, invest half [Light]",
						"Increase emergency fund [Light]",
						"Invest it all in one hot stock [Heavy]",
						"Lifestyle creep (subscriptions, gadgets) [Heavy]",
						"Crypto YOLO allocation [Heavy]",
					}},
				},
				BaseReturn: 9,
			},
			{
				ID:    "l2q3",
				Title: "Market Opportunity",
				Story: "the stock market is doing well! Should you invest more?",
				Choices: []Choice{
					{ID: "market_opportunity", Prompt: "Investment strategy?", Options: []string{
						"DCA into broad ETFs [Light]",
						"Add bonds for balance [Light]",
						"Margin to boost exposure [Heavy]",
						"All-in on momentum names [Heavy]",
						"Sell safe assets to chase returns [Heavy]",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l2q4",
				Title: "Debt Decision",
				Story: "you have some credit card debt. Should you pay it off first?",
				Choices: []Choice{
					{ID: "debt_strategy", Prompt: "What should you prioritize?", Options: []string{
						"Avalanche (highest APR first) [Light]",
						"Snowball (smallest first) [Light]",
						"Invest and pay minimums [Heavy]",
						"Ignore the debt [Heavy]",
						"New loan to pay old debt [Heavy]",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l2q5",
				Title: "Side Hustle Opportunity",
				Story: "you have a chance to start a side business. It requires investment.",
				Choices: []Choice{
					{ID: "side_hustle", Prompt: "Should you invest in the side hustle?", Options: []string{
						"Test MVP with $500 [Light]",
						"Fully fund $5,000 on credit [Heavy]",
						"Quit job to go full-time [Heavy]",
						"Partner and split costs [Light]",
						"Hire agency upfront [Heavy]",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l2q6",
				Title: "Housing Decision",
				Story: "you're thinking about moving. Should you rent or save for a house?",
				Choices: []Choice{
					{ID: "housing", Prompt: "Housing decision?", Options: []string{
						"Keep renting, invest more [Light]",
						"House fund, 20% down target [Light]",
						"Buy now with ARM + PMI [Heavy]",
						"Stretch budget, max debt-to-income [Heavy]",
						"Ignore maintenance costs [Heavy]",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l2q7",
				Title: "Investment Diversification",
				Story: "all your money is in stocks. Should you diversify?",
				Choices: []Choice{
					{ID: "diversify", Prompt: "Diversification strategy?", Options: []string{
						"60/40 (stocks/bonds) [Light]",
						"Add broad international ETF [Light]",
						"Stay 100% in one sector [Heavy]",
						"Leveraged ETFs long-term [Heavy]",
						"Concentrate in illiquid assets [Heavy]",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l2q8",
				Title: "Insurance Gap",
				Story: "you have minimal insurance. A plan with better coverage increases monthly cost.",
				Choices: []Choice{
					{ID: "cover_choice", Prompt: "Choose coverage", Options: []string{
						"Upgrade plan",
						"Stay minimal",
						"Self-insure (risky)",
					}},
				},
				BaseReturn: 6,
			},
			{
				ID:    "l2q9",
				Title: "Debt Avalanche vs Snowball",
				Story: "you carry multiple debts: 25% APR card, 6% loan.",
				Choices: []Choice{
					{ID: "debt_method", Prompt: "Repayment strategy", Options: []string{
						"Avalanche (highest APR first)",
						"Snowball (smallest first)",
						"Min payments only",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l2q10",
				Title: "Windfall Use",
				Story: "you received a $2,000 windfall.",
				Choices: []Choice{
					{ID: "windfall", Prompt: "Best use?", Options: []string{
						"Pay high-interest debt",
						"Invest lump sum",
						"Upgrade lifestyle",
					}},
				},
				BaseReturn: 7,
			},
		},
	},
	{
		Number:   3,
		Name:     "Level 3: Growing Wealth",
		AgeRange: [2]int{28, 35},
		Questions: []Question{
			{
				ID:    "l3q1",
				Title: "Tech Boom!",
				Story: "tech stocks are booming! Should you invest more?",
				Choices: []Choice{
					{ID: "tech_invest", Prompt: "Should you invest in tech?", Options: []string{
						"Yes, invest $2,000 in tech",
						"No, stay conservative",
					}},
					{ID: "diversify_tech", Prompt: "How should you balance?", Options: []string{
						"Add safer investments",
						"Go all-in on tech",
						"Keep balanced mix",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l3q2",
				Title: "Career Change",
				Story: "you're considering a career change for higher pay but more risk.",
				Choices: []Choice{
					{ID: "career_change", Prompt: "What should you do?", Options: []string{
						"Take the risk for higher pay",
						"Stay in current job",
						"Start your own business",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l3q3",
				Title: "Real Estate Opportunity",
				Story: "you see a good real estate investment opportunity.",
				Choices: []Choice{
					{ID: "real_estate", Prompt: "Should you invest?", Options: []string{
						"Yes, invest $10,000",
						"No, stick with stocks",
					}},
				},
				BaseReturn: 9,
			},
			{
				ID:    "l3q4",
				Title: "Market Volatility",
				Story: "the market has been very volatile lately. How do you react?",
				Choices: []Choice{
					{ID: "volatility", Prompt: "Your strategy?", Options: []string{
						"Stay invested, ignore volatility",
						"Sell and wait",
						"Buy more during dips",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l3q5",
				Title: "Tax Optimization",
				Story: "you're earning more and taxes are higher. Should you use tax-advantaged accounts?",
				Choices: []Choice{
					{ID: "tax_strategy", Prompt: "Tax strategy?", Options: []string{
						"Maximize retirement accounts",
						"Don't worry about taxes",
						"Get tax advice",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l3q6",
				Title: "Investment Education",
				Story: "you want to learn more about investing. Should you pay for courses?",
				Choices: []Choice{
					{ID: "education", Prompt: "What should you do?", Options: []string{
						"Invest in financial education",
						"Learn for free online",
						"Don't bother learning",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l3q7",
				Title: "Portfolio Rebalancing",
				Story: "your portfolio has grown. Should you rebalance it?",
				Choices: []Choice{
					{ID: "rebalance", Prompt: "Rebalancing strategy?", Options: []string{
						"Rebalance to target allocation",
						"Let it ride",
						"Go all-in on winners",
					}},
				},
				BaseReturn: 9,
			},
			{
				ID:    "l3q8",
				Title: "Concentration Risk",
				Story: "85% of your portfolio is a single sector.",
				Choices: []Choice{
					{ID: "concentration", Prompt: "Adjust exposure?", Options: []string{
						"Trim winners, rebalance",
						"Double-down winners",
						"Hedge with bonds",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l3q9",
				Title: "RSU/Bonus Season",
				Story: "you receive $8,000 RSUs/bonus.",
				Choices: []Choice{
					{ID: "bonus_alloc", Prompt: "Allocation?", Options: []string{
						"Sell and diversify",
						"Hold employer stock",
						"Split: taxes, invest, cash",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l3q10",
				Title: "Tax Loss Harvesting",
				Story: "positions are down this year.",
				Choices: []Choice{
					{ID: "tlh", Prompt: "Action?", Options: []string{
						"Harvest losses, avoid wash sale",
						"Do nothing",
						"Sell everything",
					}},
				},
				BaseReturn: 7,
			},
		},
	},
	{
		Number:   4,
		Name:     "Level 4: Managing Crises",
		AgeRange: [2]int{35, 42},
		Questions: []Question{
			{
				ID:    "l4q1",
				Title: "Market Crash!",
				Story: "the stock market crashed 40%! Your investments lost value.",
				Choices: []Choice{
					{ID: "panic_sell", Prompt: "How do you handle the crash?", Options: []string{
						"Sell everything now (panic!)",
						"Hold and wait for recovery",
						"Buy more while prices are low",
					}},
					{ID: "crash_strategy", Prompt: "What's your strategy?", Options: []string{
						"Save more cash for safety",
						"Keep investing as normal",
						"Move to safer investments",
					}},
				},
				BaseReturn:    -40,
				RecoveryYears: 5,
				RecoveryRate:  12,
			},
			{
				ID:    "l4q2",
				Title: "Job Loss",
				Story: "you lost your job! How will you handle finances?",
				Choices: []Choice{
					{ID: "job_loss", Prompt: "What should you do?", Options: []string{
						"Use emergency fund",
						"Sell investments",
						"Take on debt",
					}},
				},
				BaseReturn: 5,
			},
			{
				ID:    "l4q3",
				Title: "Inflation Concerns",
				Story: "inflation is rising. Your money is losing value.",
				Choices: []Choice{
					{ID: "inflation", Prompt: "How do you protect against inflation?", Options: []string{
						"Invest more aggressively",
						"Buy real estate",
						"Keep cash",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l4q4",
				Title: "Family Emergency",
				Story: "a family member needs financial help.",
				Choices: []Choice{
					{ID: "family_help", Prompt: "What should you do?", Options: []string{
						"Help with savings",
						"Invest less to help",
						"Say no, protect your future",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l4q5",
				Title: "Market Recovery",
				Story: "after the crash, markets are recovering!",
				Choices: []Choice{
					{ID: "recovery", Prompt: "Recovery strategy?", Options: []string{
						"Stay invested for recovery",
						"Take profits now",
						"Invest even more",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l4q6",
				Title: "Health Insurance",
				Story: "you need better health insurance but it costs more.",
				Choices: []Choice{
					{ID: "insurance", Prompt: "What should you do?", Options: []string{
						"Get better insurance",
						"Skip it to save money",
						"Find cheaper options",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l4q7",
				Title: "Retirement Planning",
				Story: "you're thinking about retirement. Should you increase savings?",
				Choices: []Choice{
					{ID: "retirement_boost", Prompt: "Retirement strategy?", Options: []string{
						"Drastically increase savings",
						"Keep current pace",
						"Worry about it later",
					}},
				},
				BaseReturn: 9,
			},
			{
				ID:    "l4q8",
				Title: "Sequence Risk",
				Story: "you plan withdrawals soon; markets are choppy.",
				Choices: []Choice{
					{ID: "seq_risk", Prompt: "Mitigation?", Options: []string{
						"Glidepath to bonds",
						"Bucket strategy",
						"Ignore risk",
					}},
				},
				BaseReturn: 6,
			},
			{
				ID:    "l4q9",
				Title: "Liquidity Crunch",
				Story: "you need $10,000 for an unexpected repair.",
				Choices: []Choice{
					{ID: "liquidity", Prompt: "Raise cash?", Options: []string{
						"Sell bonds",
						"Sell stocks",
						"Short-term loan",
					}},
				},
				BaseReturn: 6,
			},
		},
	},
	{
		Number:   5,
		Name:     "Level 5: Advanced Planning",
		AgeRange: [2]int{42, 52},
		Questions: []Question{
			{
				ID:    "l5q1",
				Title: "Family Planning",
				Story: "you have a child! College costs are expensive.",
				Choices: []Choice{
					{ID: "529_plan", Prompt: "Should you save for college?", Options: []string{
						"Yes, save $1,000/year",
						"No, skip it",
					}},
					{ID: "family_investments", Prompt: "How should you handle investments?", Options: []string{
						"Move to safer investments",
						"Stay aggressive",
						"Mix of both",
					}},
				},
				BaseReturn:   -20,
				RecoveryRate: 10,
			},
			{
				ID:    "l5q2",
				Title: "Recession Hits",
				Story: "a recession hits! Stocks drop 20%.",
				Choices: []Choice{
					{ID: "recession_response", Prompt: "How do you respond?", Options: []string{
						"Move to bonds",
						"Stay aggressive",
						"Mix of both strategies",
					}},
				},
				BaseReturn:   -20,
				RecoveryRate: 10,
			},
			{
				ID:    "l5q3",
				Title: "Estate Planning",
				Story: "you should plan for passing wealth to your family.",
				Choices: []Choice{
					{ID: "estate_planning", Prompt: "Estate planning?", Options: []string{
						"Set up a will and trust",
						"Don't worry about it",
						"Give money away now",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l5q4",
				Title: "Tax Strategy",
				Story: "you're earning more and need better tax strategies.",
				Choices: []Choice{
					{ID: "advanced_tax", Prompt: "Tax optimization?", Options: []string{
						"Use tax-advantaged accounts",
						"Don't worry about taxes",
						"Get professional help",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l5q5",
				Title: "Retirement Account Max",
				Story: "you can now max out your retirement accounts. Should you?",
				Choices: []Choice{
					{ID: "max_retirement", Prompt: "Should you max out retirement accounts?", Options: []string{
						"Yes, max it out!",
						"No, invest elsewhere",
					}},
				},
				BaseReturn: 9,
			},
			{
				ID:    "l5q6",
				Title: "Legacy Planning",
				Story: "you want to leave a legacy for your family.",
				Choices: []Choice{
					{ID: "legacy", Prompt: "Legacy planning?", Options: []string{
						"Increase investments for family",
						"Enjoy money now",
						"Charitable giving",
					}},
				},
				BaseReturn: 8,
			},
			{
				ID:    "l5q7",
				Title: "Final Push to Retirement",
				Story: "you're close to retirement age. Final decisions!",
				Choices: []Choice{
					{ID: "final_strategy", Prompt: "Final retirement strategy?", Options: []string{
						"Shift to safer investments",
						"Stay aggressive for growth",
						"Mix of both",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l5q8",
				Title: "Roth Conversion Window",
				Story: "income dips this year.",
				Choices: []Choice{
					{ID: "roth_conv", Prompt: "Consider conversions?", Options: []string{
						"Partial convert in low bracket",
						"Skip conversion",
						"Convert all now",
					}},
				},
				BaseReturn: 7,
			},
			{
				ID:    "l5q9",
				Title: "Long-Term Care Planning",
				Story: "LTC insurance is expensive but risks are real.",
				Choices: []Choice{
					{ID: "ltc", Prompt: "Approach?", Options: []string{
						"Buy LTC policy",
						"Self-insure",
						"Hybrid life/LTC",
					}},
				},
				BaseReturn: 6,
			},
			{
				ID:    "l5q10",
				Title: "Drawdown Strategy",
				Story: "withdrawals start next year.",
				Choices: []Choice{
					{ID: "drawdown", Prompt: "Plan?", Options: []string{
						"4% rule",
						"Guardrails method",
						"Ad-hoc as needed",
					}},
				},
				BaseReturn: 7,
			},
		},
	},
}
