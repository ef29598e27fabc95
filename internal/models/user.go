package models

// 회원 프로필, 그래프 저장소의 Person 노드와 1:1 대응
type UserProfile struct {
	UserID             string `json:"userID"`
	Email              string `json:"email"`
	Age                int    `json:"age"`
	CulturalBackground string `json:"culturalBackground"`
	Language           string `json:"language"`
	Gender             string `json:"gender"`
	Country            string `json:"country"`
}

// 프롬프트 구성에 쓰이는 프로필 일부
type UserMetadata struct {
	CulturalBackground string `json:"culturalBackground"`
	Language           string `json:"language"`
}
