package main

import (
	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/routes"
	"github.com/josielsoaresoficial/gym-jm-sub001/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
