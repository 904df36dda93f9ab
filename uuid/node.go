package uuid

import "github.com/bwmarrin/snowflake"

var snowflakeNode *snowflake.Node

func InitNode(nodeId int64) error {
	node, err := snowflake.NewNode(nodeId)
	if err != nil {
		return err
	}
	snowflakeNode = node
	return nil
}

func GenerateUUID() int64 {
	return int64(snowflakeNode.Generate())
}
