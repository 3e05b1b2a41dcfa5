package domain

// Menfess is the anonymous message feature. The API never attaches an author.
type Menfess struct {
	Id        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Points    int    `json:"points"`
	RankName  string `json:"rank_name"`
}

type GamificationStatus struct {
	Points     int    `json:"points"`
	RankName   string `json:"rank_name"`
	NextRank   string `json:"next_rank,omitempty"`
	NextPoints int    `json:"next_points,omitempty"`
}
