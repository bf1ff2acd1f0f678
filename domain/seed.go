package domain

// seedPosts mirrors the mock database the feed is built from.
var seedPosts = []Post{
	{
		Author:         "Lauti",
		Handle:         "@lautidev_",
		TimestampLabel: "· 22h",
		Body:           "What do you think of this spot for a holiday? 😍✈️🌍 #TravelGoals",
		ImageRef:       "img/vacation.jpg",
		AvatarRef:      "https://i.pravatar.cc/40?u=lautidev_",
		Verified:       true,
		Engagement:     Engagement{CommentCount: 96, RepostCount: 11, LikeCount: 800, ViewLabel: "91.2K"},
	},
	{
		Author:          "Rush",
		Handle:          "@RushColombia",
		Body:            "The planet is warming up, but you can help cool it down. ♻️🌍 #ActNow",
		ImageRef:        "img/pexels-pixabay-41953.jpg",
		AvatarRef:       "https://i.pravatar.cc/40?u=RushBetColombia",
		Verified:        true,
		IsAdvertisement: true,
		Engagement:      Engagement{CommentCount: 234, RepostCount: 45, LikeCount: 1200, ViewLabel: "45.8K"},
	},
	{
		Author:         "Tech News",
		Handle:         "@technews",
		TimestampLabel: "· 5h",
		Body:           "Mechanical keyboards are trending. What's your favourite switch? 🎮⌨️",
		AvatarRef:      "https://i.pravatar.cc/40?u=technews",
		Verified:       true,
		Engagement:     Engagement{CommentCount: 234, RepostCount: 45, LikeCount: 1200, ViewLabel: "45.8K"},
		LikedByViewer:  true,
	},
	{
		Author:         "DevLife",
		Handle:         "@devlife",
		TimestampLabel: "· 8h",
		Body:           "Remote work has its perks, but sometimes I miss the office. Which do you prefer? 💻🏠",
		AvatarRef:      "https://i.pravatar.cc/40?u=devlife",
		Verified:       true,
		Engagement:     Engagement{CommentCount: 156, RepostCount: 23, LikeCount: 678, ViewLabel: "28.5K"},
	},
	{
		Author:         "Andres",
		Handle:         "@naturelover",
		TimestampLabel: "· 1h",
		Body:           "Rome is full of history and beauty. Every corner tells a different story. 🇮🇹🌟 #Travel #History",
		ImageRef:       "img/rome.jpg",
		AvatarRef:      "https://i.pravatar.cc/40?u=naturelover",
		Engagement:     Engagement{CommentCount: 45, RepostCount: 10, LikeCount: 300, ViewLabel: "12.3K"},
	},
	{
		Author:         "Roger",
		Handle:         "@RogerF",
		TimestampLabel: "5h",
		Body:           "Green bird, endangered species! 🦜🌿 Let's protect its habitat and secure a future for these beautiful creatures. #Conservation #Nature",
		ImageRef:       "img/bird.jpg",
		AvatarRef:      "https://i.pravatar.cc/43?u=adcompany",
		Verified:       true,
		Engagement:     Engagement{CommentCount: 100, RepostCount: 32, LikeCount: 90, ViewLabel: "1K"},
	},
	{
		Author:         "Carlos",
		Handle:         "@userr",
		TimestampLabel: "· 1h",
		Body:           "Nature gives us breathtaking landscapes. 🌄🍃 #Adventure #Exploration",
		ImageRef:       "img/nature.jpg",
		AvatarRef:      "https://i.pravatar.cc/22?u=userr",
		Engagement:     Engagement{CommentCount: 45, RepostCount: 10, LikeCount: 30, ViewLabel: "1.3K"},
		LikedByViewer:  true,
	},
	{
		Author:         "Carlos",
		Handle:         "@carlos_13",
		TimestampLabel: "· 1h",
		Body:           "Star Wars is a classic that never goes out of style. May the force be with you! 🌌✨ #StarWars #Cinema",
		ImageRef:       "img/starwars.jpg",
		AvatarRef:      "https://i.pravatar.cc/55?u=carlos_13",
		Engagement:     Engagement{CommentCount: 45, RepostCount: 10, LikeCount: 300, ViewLabel: "12.3K"},
	},
	{
		Author:         "Jose",
		Handle:         "@jose_13",
		TimestampLabel: "· 3h",
		Body:           "Ships are a marvel of engineering and adventure. Sailing the ocean is a unique experience. #Travel #Adventure",
		ImageRef:       "img/ships.jpg",
		AvatarRef:      "https://i.pravatar.cc/12?u=jose_13",
		Engagement:     Engagement{CommentCount: 45, RepostCount: 10, LikeCount: 320, ViewLabel: "12.3K"},
		LikedByViewer:  true,
	},
}

// SeedPosts returns a fresh copy of the built-in mock feed.
func SeedPosts() []Post {
	out := make([]Post, len(seedPosts))
	copy(out, seedPosts)
	return out
}
