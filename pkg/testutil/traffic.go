// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package testutil

import (
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Fixed endpoints for generated traffic: sensor → receiver.
var (
	sensorMAC   = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	receiverMAC = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02}
	sensorIP    = net.IPv4(192, 168, 1, 201)
	receiverIP  = net.IPv4(192, 168, 1, 100)
)

// UDPFrame builds an Ethernet/IPv4/UDP frame addressed to dstPort, with
// correct lengths and checksums. Panics on serialization failure, which
// only happens for programming errors in the fixture itself.
func UDPFrame(dstPort uint16, payload []byte) []byte {
	eth := &layers.Ethernet{
		SrcMAC:       sensorMAC,
		DstMAC:       receiverMAC,
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    sensorIP,
		DstIP:    receiverIP,
	}
	udp := &layers.UDP{
		SrcPort: 51234,
		DstPort: layers.UDPPort(dstPort),
	}
	if err := udp.SetNetworkLayerForChecksum(ip); err != nil {
		panic(err)
	}
	return serialize(eth, ip, udp, gopacket.Payload(payload))
}

// UDPFrameWithIPOptions is UDPFrame with four NOP options in the IP
// header, so the IHL is 6 instead of 5 and the UDP header sits 4 bytes
// deeper into the frame.
func UDPFrameWithIPOptions(dstPort uint16, payload []byte) []byte {
	eth := &layers.Ethernet{
		SrcMAC:       sensorMAC,
		DstMAC:       receiverMAC,
		EthernetType: layers.EthernetTypeIPv4,
	}
	nop := layers.IPv4Option{OptionType: 1}
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    sensorIP,
		DstIP:    receiverIP,
		Options:  []layers.IPv4Option{nop, nop, nop, nop},
	}
	udp := &layers.UDP{
		SrcPort: 51234,
		DstPort: layers.UDPPort(dstPort),
	}
	if err := udp.SetNetworkLayerForChecksum(ip); err != nil {
		panic(err)
	}
	return serialize(eth, ip, udp, gopacket.Payload(payload))
}

// TCPFrame builds an Ethernet/IPv4/TCP SYN frame addressed to dstPort.
func TCPFrame(dstPort uint16) []byte {
	eth := &layers.Ethernet{
		SrcMAC:       sensorMAC,
		DstMAC:       receiverMAC,
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    sensorIP,
		DstIP:    receiverIP,
	}
	tcp := &layers.TCP{
		SrcPort: 51234,
		DstPort: layers.TCPPort(dstPort),
		SYN:     true,
		Window:  65535,
	}
	if err := tcp.SetNetworkLayerForChecksum(ip); err != nil {
		panic(err)
	}
	return serialize(eth, ip, tcp)
}

// ARPFrame builds an ARP request, i.e. an Ethernet frame whose EtherType
// is not IPv4.
func ARPFrame() []byte {
	eth := &layers.Ethernet{
		SrcMAC:       sensorMAC,
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   []byte(sensorMAC),
		SourceProtAddress: sensorIP.To4(),
		DstHwAddress:      make([]byte, 6),
		DstProtAddress:    receiverIP.To4(),
	}
	return serialize(eth, arp)
}

func serialize(ls ...gopacket.SerializableLayer) []byte {
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{
		FixLengths:       true,
		ComputeChecksums: true,
	}
	if err := gopacket.SerializeLayers(buf, opts, ls...); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
